// Package translation reads and writes translation files in the formats
// supported by transkeys. File content is modeled as a flat key/value map;
// nested structures in existing files are flattened with "." separators
// on read.
package translation

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"transkeys/internal/config"
	"transkeys/internal/errors"
	"transkeys/internal/paths"
	"transkeys/pkg/fileutil"
)

// Read loads the translation file at path. A missing file yields an empty
// map, not an error: a translation file that does not exist yet simply has
// no entries.
func Read(path string, format config.FileFormat) (map[string]string, error) {
	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
			return map[string]string{}, nil
		}
		return nil, err
	}

	switch format {
	case config.FormatJSON:
		var raw map[string]any
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, errors.Wrapf(err, "parsing %s", path)
		}
		return flatten(raw), nil
	case config.FormatYAML:
		var raw map[string]any
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, errors.Wrapf(err, "parsing %s", path)
		}
		return flatten(raw), nil
	case config.FormatTOML:
		var raw map[string]any
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, errors.Wrapf(err, "parsing %s", path)
		}
		return flatten(raw), nil
	case config.FormatPOT:
		return parsePOT(data), nil
	default:
		return nil, errors.Wrapf(errors.ErrUnknownFormat, "%q", format)
	}
}

// Write stores entries at path in the given format, atomically, creating
// the parent directory when needed. Keys are written flat and sorted.
func Write(path string, format config.FileFormat, entries map[string]string) error {
	if err := paths.EnsureDir(filepath.Dir(path), 0); err != nil {
		return errors.Wrapf(err, "creating directory for %s", path)
	}

	switch format {
	case config.FormatJSON:
		return fileutil.AtomicWriteJSON(path, entries)
	case config.FormatYAML:
		return fileutil.AtomicWriteYAML(path, entries)
	case config.FormatTOML:
		return fileutil.AtomicWriteTOML(path, entries)
	case config.FormatPOT:
		return fileutil.AtomicWriteFile(path, marshalPOT(entries), 0644)
	default:
		return errors.Wrapf(errors.ErrUnknownFormat, "%q", format)
	}
}

// Update merges keys into the translation file at path: existing values
// are kept, missing keys are added with defaultValue. It reports how many
// keys were added. The file is rewritten only when something changed.
func Update(path string, format config.FileFormat, keys []string, defaultValue string) (int, error) {
	entries, err := Read(path, format)
	if err != nil {
		return 0, err
	}

	added := 0
	for _, k := range keys {
		if _, ok := entries[k]; !ok {
			entries[k] = defaultValue
			added++
		}
	}

	if added == 0 {
		if _, err := os.Stat(path); err == nil {
			return 0, nil
		}
	}

	if err := Write(path, format, entries); err != nil {
		return 0, err
	}
	return added, nil
}

// flatten converts a possibly nested map into flat dot-separated keys.
// Non-map, non-string leaves are stringified.
func flatten(raw map[string]any) map[string]string {
	out := make(map[string]string, len(raw))
	flattenInto("", raw, out)
	return out
}

func flattenInto(prefix string, raw map[string]any, out map[string]string) {
	for k, v := range raw {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case map[string]any:
			flattenInto(key, val, out)
		case map[any]any:
			m := make(map[string]any, len(val))
			for mk, mv := range val {
				m[fmt.Sprint(mk)] = mv
			}
			flattenInto(key, m, out)
		case string:
			out[key] = val
		default:
			out[key] = fmt.Sprint(v)
		}
	}
}

// SortedKeys returns the map keys in sorted order.
func SortedKeys(entries map[string]string) []string {
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
