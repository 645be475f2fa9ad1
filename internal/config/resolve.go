package config

import (
	"os"
	"path/filepath"
	"sort"

	"transkeys/internal/errors"
	"transkeys/internal/workspace"
)

// Resolver produces fully resolved configurations. It is safe to call
// Resolve repeatedly within one process: every call performs a fresh
// project root lookup, so consecutive resolutions against different
// projects are fully isolated. Nothing is cached between calls.
type Resolver struct {
	// Roots resolves project names to base paths. Required.
	Roots workspace.RootResolver

	// Workspace is the shared workspace config layered beneath inline
	// overrides. May be nil.
	Workspace *workspace.Config

	// WorkingDir anchors relative paths. Defaults to os.Getwd.
	WorkingDir string
}

// Resolve merges the inline config with the workspace config and built-in
// defaults, interpolates ${sourceRoot} into the path fields, resolves them
// to absolute paths against the working directory, and validates the
// declared directories for the given command.
//
// Validation failures return a fatal *errors.ExitError; the CLI shell is
// responsible for the actual process exit. The core never exits itself.
func (r *Resolver) Resolve(inline Raw, cmd Command) (*Resolved, error) {
	// Fresh lookup per call. Caching here would leak one project's root
	// into the next resolution.
	base, err := r.Roots.ResolveProjectBasePath(inline.Project)
	if err != nil {
		return nil, errors.NewUserError(err, "Declare the project under 'projects' in transkeys.yaml")
	}

	raw, err := Merge(inline, r.Workspace)
	if err != nil {
		return nil, err
	}

	wd := r.WorkingDir
	if wd == "" {
		wd, err = os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "determining working directory")
		}
	}

	if !raw.FileFormat.Valid() {
		return nil, errors.NewExitError(
			errors.Wrapf(errors.ErrInvalidConfig, "fileFormat %q (supported: %v)", raw.FileFormat, FileFormats()),
			errors.ExitUser)
	}
	if len(raw.Langs) == 0 {
		return nil, errors.NewExitError(
			errors.Wrap(errors.ErrInvalidConfig, "langs must not be empty"),
			errors.ExitUser)
	}

	res := &Resolved{
		Input:        absAll(InterpolateAll(raw.Input, base.BasePath), wd),
		Output:       absPath(Interpolate(raw.Output, base.BasePath), wd),
		Langs:        append([]string(nil), raw.Langs...),
		FileFormat:   raw.FileFormat,
		DefaultValue: raw.DefaultValue,
		Scopes:       raw.Scopes,
		ScopeAliases: aliasOrder(raw),
		ScopePathMap: raw.ScopePathMap,
		Project:      inline.Project,
		Marker:       raw.Marker,
		sourceRoot:   base.BasePath,
	}
	if raw.TranslationsPath != "" {
		res.TranslationsPath = absPath(Interpolate(raw.TranslationsPath, base.BasePath), wd)
	}

	if err := ValidatePaths(res, cmd); err != nil {
		return nil, err
	}

	return res, nil
}

// absPath joins p with wd unless p is already absolute. Joining is never
// applied twice.
func absPath(p, wd string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(wd, p)
}

func absAll(ps []string, wd string) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = absPath(p, wd)
	}
	return out
}

// aliasOrder returns the deterministic scope iteration order: the explicit
// order when the source preserved one, otherwise sorted alias order.
func aliasOrder(raw Raw) []string {
	if len(raw.ScopeAliases) > 0 {
		return append([]string(nil), raw.ScopeAliases...)
	}
	aliases := make([]string, 0, len(raw.Scopes))
	for alias := range raw.Scopes {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)
	return aliases
}
