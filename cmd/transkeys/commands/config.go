package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"transkeys/internal/config"
	"transkeys/internal/errors"
)

func init() {
	registerInlineFlags(configCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the fully resolved configuration",
	Long: `Config prints the configuration after merging inline flags, the
workspace config, and built-in defaults, with all path fields resolved
to absolute paths.`,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	inline, err := collectInline()
	if err != nil {
		return err
	}

	// Path validation belongs to extract/find; config only reports, so it
	// resolves under the extract rules (translations path optional).
	res, err := newResolver().Resolve(inline, config.CommandExtract)
	if err != nil {
		return err
	}

	out := struct {
		config.Resolved `yaml:",inline"`
		SourceRoot      string `yaml:"sourceRoot"`
	}{Resolved: *res, SourceRoot: res.SourceRoot()}

	data, err := yaml.Marshal(out)
	if err != nil {
		return errors.Wrap(err, "rendering config")
	}

	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}
