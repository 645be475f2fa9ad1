package commands

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"transkeys/internal/config"
	"transkeys/internal/errors"
	"transkeys/internal/extract"
	"transkeys/internal/scope"
	"transkeys/internal/translation"
)

var findInteractive bool

func init() {
	registerInlineFlags(findCmd)
	findCmd.Flags().BoolVarP(&findInteractive, "interactive", "i", false,
		"pick a key interactively and show its per-language status")
	rootCmd.AddCommand(findCmd)
}

var findCmd = &cobra.Command{
	Use:   "find",
	Short: "Report missing and unused translation keys",
	Long: `Find compares the keys referenced in the configured input directories
against the existing translation files and reports, per file, keys that
are referenced but missing and keys that are present but no longer
referenced. The translations directory must exist.`,
	Example: `  # Report missing and unused keys
  transkeys find

  # Inspect a single key interactively
  transkeys find --interactive`,
	RunE: runFind,
}

// fileReport is the comparison result for one translation file.
type fileReport struct {
	Path    string
	Missing []string
	Unused  []string
}

func runFind(cmd *cobra.Command, _ []string) error {
	inline, err := collectInline()
	if err != nil {
		return err
	}

	res, err := newResolver().Resolve(inline, config.CommandFind)
	if err != nil {
		return err
	}

	scanner := extract.NewScanner(res.Marker)
	keys, err := scanner.ScanDirs(res.Input)
	if err != nil {
		return err
	}
	names := extract.Unique(keys)

	if findInteractive {
		return runInteractiveFind(cmd.OutOrStdout(), res, names)
	}

	reports, err := compareFiles(res, names)
	if err != nil {
		return err
	}
	return printReports(cmd.OutOrStdout(), reports)
}

// compareFiles reads every expected translation file and diffs its keys
// against the extracted set.
func compareFiles(res *config.Resolved, names []string) ([]fileReport, error) {
	rootKeys, scoped := bucketKeys(names, res.Scopes)

	type target struct {
		path string
		keys []string
	}
	var targets []target

	for _, entry := range scope.BuildFilePaths(scope.FromResolved(res)) {
		targets = append(targets, target{path: entry.Path, keys: scoped[entry.Scope]})
	}
	for _, path := range rootFilePaths(res) {
		targets = append(targets, target{path: path, keys: rootKeys})
	}

	var reports []fileReport
	for _, t := range targets {
		entries, err := translation.Read(t.path, res.FileFormat)
		if err != nil {
			return nil, err
		}

		expected := make(map[string]bool, len(t.keys))
		report := fileReport{Path: t.path}
		for _, k := range t.keys {
			expected[k] = true
			if _, ok := entries[k]; !ok {
				report.Missing = append(report.Missing, k)
			}
		}
		for k := range entries {
			if !expected[k] {
				report.Unused = append(report.Unused, k)
			}
		}
		sort.Strings(report.Missing)
		sort.Strings(report.Unused)
		reports = append(reports, report)
	}

	return reports, nil
}

func printReports(w io.Writer, reports []fileReport) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FILE\tMISSING\tUNUSED")
	for _, r := range reports {
		fmt.Fprintf(tw, "%s\t%d\t%d\n", r.Path, len(r.Missing), len(r.Unused))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	for _, r := range reports {
		if len(r.Missing) == 0 && len(r.Unused) == 0 {
			continue
		}
		fmt.Fprintf(w, "\n%s\n", r.Path)
		for _, k := range r.Missing {
			fmt.Fprintf(w, "  missing  %s\n", k)
		}
		for _, k := range r.Unused {
			fmt.Fprintf(w, "  unused   %s\n", k)
		}
	}
	return nil
}

// runInteractiveFind opens a fuzzy picker over the extracted keys and
// prints the selected key's value per language.
func runInteractiveFind(w io.Writer, res *config.Resolved, names []string) error {
	if len(names) == 0 {
		fmt.Fprintln(w, "No keys found.")
		return nil
	}

	table, err := buildKeyTable(res, names)
	if err != nil {
		return err
	}

	idx, err := fuzzyfinder.Find(
		names,
		func(i int) string {
			return names[i]
		},
		fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i == -1 {
				return ""
			}
			return previewKey(names[i], res.Langs, table)
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil
		}
		return errors.Wrap(err, "interactive find failed")
	}

	fmt.Fprintf(w, "Key: %s\n", names[idx])
	fmt.Fprint(w, previewKey(names[idx], res.Langs, table))
	return nil
}

// buildKeyTable loads all translation files and indexes values by full
// key name and language.
func buildKeyTable(res *config.Resolved, names []string) (map[string]map[string]string, error) {
	table := make(map[string]map[string]string, len(names))

	load := func(path, lang, prefix string) error {
		entries, err := translation.Read(path, res.FileFormat)
		if err != nil {
			return err
		}
		for k, v := range entries {
			name := k
			if prefix != "" {
				name = prefix + "." + k
			}
			if table[name] == nil {
				table[name] = make(map[string]string, len(res.Langs))
			}
			table[name][lang] = v
		}
		return nil
	}

	entries := scope.BuildFilePaths(scope.FromResolved(res))
	for i, entry := range entries {
		// Languages nest within each alias, in config order
		lang := res.Langs[i%len(res.Langs)]
		if err := load(entry.Path, lang, entry.Scope); err != nil {
			return nil, err
		}
	}
	for i, path := range rootFilePaths(res) {
		if err := load(path, res.Langs[i], ""); err != nil {
			return nil, err
		}
	}

	return table, nil
}

func previewKey(name string, langs []string, table map[string]map[string]string) string {
	out := ""
	for _, lang := range langs {
		if v, ok := table[name][lang]; ok {
			out += fmt.Sprintf("%s: %q\n", lang, v)
		} else {
			out += fmt.Sprintf("%s: (missing)\n", lang)
		}
	}
	return out
}
