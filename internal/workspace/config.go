// Package workspace loads the shared workspace configuration and resolves
// project names to their base paths. The workspace config is a tool-wide
// file (transkeys.yaml) layered beneath inline overrides by the config
// merge; project lookup is exposed as an injectable RootResolver so each
// resolution call stays isolated.
package workspace

import (
	"path/filepath"

	"github.com/spf13/viper"

	"transkeys/internal/errors"
	"transkeys/internal/paths"
)

// AppName is the application name used for config file naming.
const AppName = "transkeys"

// Config is the shared workspace configuration. All fields are optional;
// the config merge fills anything absent from built-in defaults.
type Config struct {
	Langs                []string           `mapstructure:"langs" yaml:"langs"`
	RootTranslationsPath string             `mapstructure:"rootTranslationsPath" yaml:"rootTranslationsPath"`
	DefaultProject       string             `mapstructure:"defaultProject" yaml:"defaultProject"`
	KeysManager          KeysManager        `mapstructure:"keysManager" yaml:"keysManager"`
	Projects             map[string]Project `mapstructure:"projects" yaml:"projects"`
}

// KeysManager is the tool-specific override block inside the workspace
// config.
type KeysManager struct {
	DefaultValue string   `mapstructure:"defaultValue" yaml:"defaultValue"`
	Input        []string `mapstructure:"input" yaml:"input"`
	Output       string   `mapstructure:"output" yaml:"output"`
}

// Project declares one workspace project.
type Project struct {
	SourceRoot  string `mapstructure:"sourceRoot" yaml:"sourceRoot"`
	ProjectType Type   `mapstructure:"projectType" yaml:"projectType"`
}

// Init initializes Viper with the workspace config search rules.
// Call this once at application startup before Load.
func Init() {
	viper.SetConfigName(AppName)
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".") // Current directory
	viper.AddConfigPath(filepath.Join(paths.ConfigHome(), AppName))

	// Environment variable support
	viper.SetEnvPrefix("TRANSKEYS")
	viper.AutomaticEnv()
}

// Load reads the workspace configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches the default locations; a missing file is
// not an error in that case and an empty config is returned.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// If the user named a file, its absence is an error
			if path != "" {
				return nil, errors.Wrapf(err, "workspace config not found at %s", path)
			}
		} else {
			return nil, errors.Wrap(err, "reading workspace config")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling workspace config")
	}

	return &cfg, nil
}
