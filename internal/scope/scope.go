// Package scope derives the concrete translation file path for each
// (scope, language) pair of a resolved configuration.
package scope

import "transkeys/internal/config"

// FileEntry is one output translation file for a (scope, language) pair.
// Entries are created fresh on every build and never mutated.
type FileEntry struct {
	Path  string
	Scope string
}

// Params carries the resolved-config fields needed to derive scope file
// paths.
type Params struct {
	// Aliases is the scope iteration order.
	Aliases []string
	// AliasToScope maps each alias to its scope identifier.
	AliasToScope map[string]string
	// Output is the default base directory; scopes without an override
	// live under Output + "/" + alias.
	Output string
	// Langs is the language order.
	Langs []string
	// FileFormat is the file extension.
	FileFormat config.FileFormat
	// ScopePathMap optionally overrides the base directory per alias. The
	// override may contain ${sourceRoot}. Keys without a matching alias
	// are inert.
	ScopePathMap map[string]string
	// SourceRoot is the raw project base path used to interpolate
	// overrides.
	SourceRoot string
}

// BuildFilePaths produces one entry per (alias, language) pair: aliases in
// the given order, languages in the given order, languages nested within
// each alias. Paths are built by string concatenation so templated
// segments survive untouched. No deduplication is performed.
func BuildFilePaths(p Params) []FileEntry {
	entries := make([]FileEntry, 0, len(p.Aliases)*len(p.Langs))

	for _, alias := range p.Aliases {
		if _, ok := p.AliasToScope[alias]; !ok {
			continue
		}

		base := p.Output + "/" + alias
		if override, ok := p.ScopePathMap[alias]; ok {
			// The override is the base directory itself; no alias segment
			// is appended.
			base = config.Interpolate(override, p.SourceRoot)
		}

		for _, lang := range p.Langs {
			entries = append(entries, FileEntry{
				Path:  base + "/" + lang + "." + string(p.FileFormat),
				Scope: alias,
			})
		}
	}

	return entries
}

// FromResolved builds the Params for a resolved configuration.
func FromResolved(cfg *config.Resolved) Params {
	return Params{
		Aliases:      cfg.ScopeAliases,
		AliasToScope: cfg.Scopes,
		Output:       cfg.Output,
		Langs:        cfg.Langs,
		FileFormat:   cfg.FileFormat,
		ScopePathMap: cfg.ScopePathMap,
		SourceRoot:   cfg.SourceRoot(),
	}
}
