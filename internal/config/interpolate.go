package config

import "strings"

// SourceRootToken is the only placeholder recognized in path values.
const SourceRootToken = "${sourceRoot}"

// Interpolate replaces every occurrence of ${sourceRoot} in path with
// sourceRoot. When the token is absent the input is returned unchanged.
//
// This is literal substring replacement only. No path normalization is
// performed: "${sourceRoot}/../public" with root "libs/my-lib/src" yields
// "libs/my-lib/src/../public", with the ".." segment preserved. Callers
// depend on the uncollapsed form.
func Interpolate(path, sourceRoot string) string {
	if !strings.Contains(path, SourceRootToken) {
		return path
	}
	return strings.ReplaceAll(path, SourceRootToken, sourceRoot)
}

// InterpolateAll applies Interpolate to each element, returning a fresh
// slice. A nil input yields nil.
func InterpolateAll(paths []string, sourceRoot string) []string {
	if paths == nil {
		return nil
	}
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = Interpolate(p, sourceRoot)
	}
	return out
}
