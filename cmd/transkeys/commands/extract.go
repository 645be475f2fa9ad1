package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"transkeys/internal/config"
	"transkeys/internal/extract"
	"transkeys/internal/logging"
	"transkeys/internal/scope"
	"transkeys/internal/translation"
)

func init() {
	registerInlineFlags(extractCmd)
	rootCmd.AddCommand(extractCmd)
}

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract translation keys into translation files",
	Long: `Extract scans the configured input directories for translation keys
and updates one translation file per scope and language. Existing
translations are kept; new keys are added with the configured default
value. Missing output directories are created.`,
	Example: `  # Extract with workspace configuration
  transkeys extract

  # Extract for a library project into its own output
  transkeys extract --project my-lib --output '${sourceRoot}/../public/i18n'`,
	RunE: runExtract,
}

func runExtract(cmd *cobra.Command, _ []string) error {
	inline, err := collectInline()
	if err != nil {
		return err
	}

	res, err := newResolver().Resolve(inline, config.CommandExtract)
	if err != nil {
		return err
	}

	return extractInto(cmd.OutOrStdout(), logging.FromContext(cmd.Context()), res)
}

// extractInto performs the extraction against a resolved config.
func extractInto(w io.Writer, log *slog.Logger, res *config.Resolved) error {
	scanner := extract.NewScanner(res.Marker)
	keys, err := scanner.ScanDirs(res.Input)
	if err != nil {
		return err
	}
	names := extract.Unique(keys)
	log.Debug("scanned inputs", "dirs", len(res.Input), "keys", len(names))

	rootKeys, scoped := bucketKeys(names, res.Scopes)

	filesWritten := 0
	keysAdded := 0

	for _, entry := range scope.BuildFilePaths(scope.FromResolved(res)) {
		added, err := translation.Update(entry.Path, res.FileFormat, scoped[entry.Scope], res.DefaultValue)
		if err != nil {
			return err
		}
		log.Debug("updated scope file", "path", entry.Path, "scope", entry.Scope, "added", added)
		filesWritten++
		keysAdded += added
	}

	for _, path := range rootFilePaths(res) {
		added, err := translation.Update(path, res.FileFormat, rootKeys, res.DefaultValue)
		if err != nil {
			return err
		}
		log.Debug("updated root file", "path", path, "added", added)
		filesWritten++
		keysAdded += added
	}

	fmt.Fprintf(w, "Extracted %d keys into %d files (%d added)\n", len(names), filesWritten, keysAdded)
	return nil
}

// bucketKeys splits extracted key names into root keys and per-alias
// scoped keys (alias prefix stripped).
func bucketKeys(names []string, aliases map[string]string) ([]string, map[string][]string) {
	var rootKeys []string
	scoped := make(map[string][]string)

	for _, name := range names {
		alias, rest, ok := extract.SplitScope(name, aliases)
		if ok {
			scoped[alias] = append(scoped[alias], rest)
		} else {
			rootKeys = append(rootKeys, name)
		}
	}
	return rootKeys, scoped
}

// rootFilePaths returns the per-language paths of the root translation
// files: under translationsPath when configured, else under output.
func rootFilePaths(res *config.Resolved) []string {
	base := res.TranslationsPath
	if base == "" {
		base = res.Output
	}

	paths := make([]string, 0, len(res.Langs))
	for _, lang := range res.Langs {
		paths = append(paths, base+string(os.PathSeparator)+lang+"."+string(res.FileFormat))
	}
	return paths
}
