package config

// Defaults returns the built-in configuration template. It constructs a
// fresh value on every call; merge operations copy into their own
// destination, so the template is never mutated in place.
func Defaults() Raw {
	return Raw{
		Input:        StringList{"src"},
		Output:       "src/assets/i18n",
		Langs:        []string{"en"},
		FileFormat:   FormatJSON,
		DefaultValue: "missing",
		Marker:       "t",
	}
}
