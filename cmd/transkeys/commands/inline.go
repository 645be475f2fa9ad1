package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"transkeys/internal/config"
	"transkeys/internal/errors"
)

// Inline config flag values. These form the highest-precedence
// configuration layer.
var (
	inlineProject      string
	inlineInput        []string
	inlineOutput       string
	inlineTranslations string
	inlineLangs        []string
	inlineFormat       string
	inlineDefaultValue string
	inlineMarker       string
	inlineScopes       []string
	inlineScopePaths   []string
)

// registerInlineFlags adds the inline configuration flags to a command.
func registerInlineFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&inlineProject, "project", "", "workspace project to resolve ${sourceRoot} against")
	f.StringSliceVar(&inlineInput, "input", nil, "input directories to scan")
	f.StringVar(&inlineOutput, "output", "", "output directory for translation files")
	f.StringVar(&inlineTranslations, "translations-path", "", "root translations directory")
	f.StringSliceVar(&inlineLangs, "langs", nil, "language codes, in output order")
	f.StringVar(&inlineFormat, "format", "", "translation file format: json, pot, yaml, toml")
	f.StringVar(&inlineDefaultValue, "default-value", "", "value assigned to newly added keys")
	f.StringVar(&inlineMarker, "marker", "", "marker identifying translation keys in source")
	f.StringArrayVar(&inlineScopes, "scope", nil, "scope mapping alias=scope (repeatable, ordered)")
	f.StringArrayVar(&inlineScopePaths, "scope-path", nil, "scope path override alias=path (repeatable)")
}

// collectInline builds the inline configuration layer from flag values.
// Repeated --scope flags preserve their given order.
func collectInline() (config.Raw, error) {
	raw := config.Raw{
		Input:            config.StringList(inlineInput),
		Output:           inlineOutput,
		TranslationsPath: inlineTranslations,
		Langs:            inlineLangs,
		FileFormat:       config.FileFormat(inlineFormat),
		DefaultValue:     inlineDefaultValue,
		Project:          inlineProject,
		Marker:           inlineMarker,
	}

	for _, pair := range inlineScopes {
		alias, scopeID, err := splitPair(pair)
		if err != nil {
			return config.Raw{}, errors.NewUserError(err, "Use --scope alias=scope")
		}
		if raw.Scopes == nil {
			raw.Scopes = make(map[string]string, len(inlineScopes))
		}
		raw.Scopes[alias] = scopeID
		raw.ScopeAliases = append(raw.ScopeAliases, alias)
	}

	for _, pair := range inlineScopePaths {
		alias, path, err := splitPair(pair)
		if err != nil {
			return config.Raw{}, errors.NewUserError(err, "Use --scope-path alias=path")
		}
		if raw.ScopePathMap == nil {
			raw.ScopePathMap = make(map[string]string, len(inlineScopePaths))
		}
		raw.ScopePathMap[alias] = path
	}

	return raw, nil
}

func splitPair(pair string) (string, string, error) {
	i := strings.IndexByte(pair, '=')
	if i <= 0 || i == len(pair)-1 {
		return "", "", errors.Newf("malformed pair %q", pair)
	}
	return pair[:i], pair[i+1:], nil
}
