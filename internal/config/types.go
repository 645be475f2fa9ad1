// Package config implements the layered configuration pipeline for
// transkeys: defaults, workspace config, and inline overrides are merged,
// path fields are interpolated and resolved to absolute paths, and the
// declared directories are validated before any command runs.
package config

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"transkeys/internal/errors"
)

// Command identifies the active subcommand. PathValidator applies the
// translations-path rule only under CommandFind.
type Command string

const (
	// CommandExtract extracts keys and may create the translations directory.
	CommandExtract Command = "extract"
	// CommandFind reads existing translations and requires them to be present.
	CommandFind Command = "find"
)

// FileFormat enumerates supported translation file formats.
type FileFormat string

const (
	FormatJSON FileFormat = "json"
	FormatPOT  FileFormat = "pot"
	FormatYAML FileFormat = "yaml"
	FormatTOML FileFormat = "toml"
)

// FileFormats returns all supported formats.
func FileFormats() []FileFormat {
	return []FileFormat{FormatJSON, FormatPOT, FormatYAML, FormatTOML}
}

// Valid reports whether f is one of the supported formats.
func (f FileFormat) Valid() bool {
	switch f {
	case FormatJSON, FormatPOT, FormatYAML, FormatTOML:
		return true
	}
	return false
}

// StringList is a []string that also accepts a single scalar when decoded
// from YAML or JSON. A bare string normalizes to a one-element list.
type StringList []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *StringList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var s string
		if err := value.Decode(&s); err != nil {
			return err
		}
		*l = StringList{s}
		return nil
	case yaml.SequenceNode:
		var ss []string
		if err := value.Decode(&ss); err != nil {
			return err
		}
		*l = StringList(ss)
		return nil
	default:
		return errors.Newf("expected string or list, got YAML kind %d", value.Kind)
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (l *StringList) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*l = StringList{s}
		return nil
	}
	var ss []string
	if err := json.Unmarshal(data, &ss); err != nil {
		return errors.Wrap(err, "decoding string list")
	}
	*l = StringList(ss)
	return nil
}

// Raw is one partially specified configuration layer. Any field may be
// absent; absent fields are filled from lower-precedence layers by Merge.
type Raw struct {
	Input            StringList        `mapstructure:"input" yaml:"input,omitempty" json:"input,omitempty"`
	Output           string            `mapstructure:"output" yaml:"output,omitempty" json:"output,omitempty"`
	TranslationsPath string            `mapstructure:"translationsPath" yaml:"translationsPath,omitempty" json:"translationsPath,omitempty"`
	Langs            []string          `mapstructure:"langs" yaml:"langs,omitempty" json:"langs,omitempty"`
	FileFormat       FileFormat        `mapstructure:"fileFormat" yaml:"fileFormat,omitempty" json:"fileFormat,omitempty"`
	DefaultValue     string            `mapstructure:"defaultValue" yaml:"defaultValue,omitempty" json:"defaultValue,omitempty"`
	Scopes           map[string]string `mapstructure:"scopes" yaml:"scopes,omitempty" json:"scopes,omitempty"`
	ScopePathMap     map[string]string `mapstructure:"scopePathMap" yaml:"scopePathMap,omitempty" json:"scopePathMap,omitempty"`
	Project          string            `mapstructure:"project" yaml:"project,omitempty" json:"project,omitempty"`
	Marker           string            `mapstructure:"marker" yaml:"marker,omitempty" json:"marker,omitempty"`

	// ScopeAliases carries an explicit iteration order for Scopes when the
	// source preserves one (repeated CLI flags). When empty, the resolved
	// config falls back to sorted alias order.
	ScopeAliases []string `mapstructure:"-" yaml:"-" json:"-"`
}

// Resolved is the fully merged, interpolated, and validated configuration.
// Every path field is absolute and Langs is non-empty.
type Resolved struct {
	Input            []string          `yaml:"input" json:"input"`
	Output           string            `yaml:"output" json:"output"`
	TranslationsPath string            `yaml:"translationsPath,omitempty" json:"translationsPath,omitempty"`
	Langs            []string          `yaml:"langs" json:"langs"`
	FileFormat       FileFormat        `yaml:"fileFormat" json:"fileFormat"`
	DefaultValue     string            `yaml:"defaultValue" json:"defaultValue"`
	Scopes           map[string]string `yaml:"scopes,omitempty" json:"scopes,omitempty"`
	ScopeAliases     []string          `yaml:"-" json:"-"`
	ScopePathMap     map[string]string `yaml:"scopePathMap,omitempty" json:"scopePathMap,omitempty"`
	Project          string            `yaml:"project,omitempty" json:"project,omitempty"`
	Marker           string            `yaml:"marker" json:"marker"`

	// sourceRoot is the raw project base path as returned by the root
	// resolver, before interpolation and absolutization. Scope path
	// overrides interpolate against this value, not the absolute paths.
	sourceRoot string
}

// SourceRoot returns the raw project base path retained for scope path
// interpolation.
func (c *Resolved) SourceRoot() string {
	return c.sourceRoot
}
