package workspace

import "transkeys/internal/errors"

// Type classifies a workspace project.
type Type string

const (
	TypeApplication Type = "application"
	TypeLibrary     Type = "library"
)

// DefaultSourceRoot is used when no workspace declares any projects.
const DefaultSourceRoot = "src"

// ProjectBase is the result of a project root lookup.
type ProjectBase struct {
	BasePath    string
	ProjectType Type
}

// RootResolver resolves an optional project name to its base path.
//
// Implementations must be pure functions of their input: callers invoke
// the resolver fresh on every configuration resolution so that
// multi-project runs in one process never see another project's root.
// Do not memoize.
type RootResolver interface {
	ResolveProjectBasePath(project string) (ProjectBase, error)
}

// Roots is the file-backed RootResolver reading the workspace projects
// mapping.
type Roots struct {
	cfg *Config
}

// NewRoots creates a Roots resolver over the given workspace config.
// A nil config is allowed and resolves everything to the default root.
func NewRoots(cfg *Config) *Roots {
	return &Roots{cfg: cfg}
}

// ResolveProjectBasePath returns the base path for the named project.
// An empty name falls back to the workspace default project; without a
// workspace (or a default project), the conventional "src" root is used.
// A named project missing from the workspace is an error.
func (r *Roots) ResolveProjectBasePath(project string) (ProjectBase, error) {
	name := project
	if name == "" && r.cfg != nil {
		name = r.cfg.DefaultProject
	}

	if name == "" {
		return ProjectBase{BasePath: DefaultSourceRoot, ProjectType: TypeApplication}, nil
	}

	if r.cfg == nil || r.cfg.Projects == nil {
		return ProjectBase{}, errors.Wrapf(errors.ErrProjectNotFound, "%q", name)
	}

	p, ok := r.cfg.Projects[name]
	if !ok {
		return ProjectBase{}, errors.Wrapf(errors.ErrProjectNotFound, "%q", name)
	}

	projectType := p.ProjectType
	if projectType == "" {
		projectType = TypeApplication
	}

	return ProjectBase{BasePath: p.SourceRoot, ProjectType: projectType}, nil
}
