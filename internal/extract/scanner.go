// Package extract scans source trees for translation keys referenced
// behind the configured marker.
package extract

import (
	"io/fs"
	"path/filepath"
	"regexp"
	"strings"

	"transkeys/internal/errors"
	"transkeys/pkg/fileutil"
)

// Key is one extracted translation key occurrence.
type Key struct {
	Name string
	File string
	Line int
}

// sourceExts are the file extensions considered by the scanner.
var sourceExts = map[string]bool{
	".ts":     true,
	".tsx":    true,
	".js":     true,
	".jsx":    true,
	".html":   true,
	".vue":    true,
	".svelte": true,
}

// skipDirs are directory names never descended into.
var skipDirs = map[string]bool{
	"node_modules": true,
	"dist":         true,
	"coverage":     true,
}

// Scanner finds keys referenced behind a marker, either as a call
// (marker('key') / marker("key")) or as a template pipe ('key' | marker).
type Scanner struct {
	marker  string
	callPat *regexp.Regexp
	pipePat *regexp.Regexp
}

// NewScanner creates a Scanner for the given marker.
func NewScanner(marker string) *Scanner {
	quoted := regexp.QuoteMeta(marker)
	return &Scanner{
		marker:  marker,
		callPat: regexp.MustCompile(`\b` + quoted + `\(\s*['"]([A-Za-z0-9_][A-Za-z0-9_.-]*)['"]`),
		pipePat: regexp.MustCompile(`['"]([A-Za-z0-9_][A-Za-z0-9_.-]*)['"]\s*\|\s*` + quoted + `\b`),
	}
}

// ScanDirs walks each input directory and collects every key occurrence.
// Hidden directories and the usual build output directories are skipped.
func (s *Scanner) ScanDirs(dirs []string) ([]Key, error) {
	var keys []Key

	for _, dir := range dirs {
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				name := d.Name()
				if path != dir && (skipDirs[name] || strings.HasPrefix(name, ".")) {
					return filepath.SkipDir
				}
				return nil
			}
			if !sourceExts[filepath.Ext(path)] {
				return nil
			}

			found, err := s.scanFile(path)
			if err != nil {
				return err
			}
			keys = append(keys, found...)
			return nil
		})
		if err != nil {
			return nil, errors.Wrapf(err, "scanning %s", dir)
		}
	}

	return keys, nil
}

// scanFile collects the key occurrences in a single file.
func (s *Scanner) scanFile(path string) ([]Key, error) {
	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		// Oversized files are skipped rather than failing the whole run
		if errors.Is(err, fileutil.ErrFileTooLarge) {
			return nil, nil
		}
		return nil, err
	}

	var keys []Key
	for i, line := range strings.Split(string(data), "\n") {
		for _, pat := range []*regexp.Regexp{s.callPat, s.pipePat} {
			for _, m := range pat.FindAllStringSubmatch(line, -1) {
				keys = append(keys, Key{Name: m[1], File: path, Line: i + 1})
			}
		}
	}
	return keys, nil
}

// Unique returns the distinct key names in first-occurrence order.
func Unique(keys []Key) []string {
	seen := make(map[string]bool, len(keys))
	var names []string
	for _, k := range keys {
		if !seen[k.Name] {
			seen[k.Name] = true
			names = append(names, k.Name)
		}
	}
	return names
}

// SplitScope splits a key name into its scope alias and remainder when the
// leading segment matches a configured alias. Keys without a known alias
// prefix belong to the root translation file.
func SplitScope(name string, aliases map[string]string) (alias, rest string, ok bool) {
	i := strings.IndexByte(name, '.')
	if i <= 0 || i == len(name)-1 {
		return "", name, false
	}
	head := name[:i]
	if _, known := aliases[head]; !known {
		return "", name, false
	}
	return head, name[i+1:], true
}
