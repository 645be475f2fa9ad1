package workspace

import (
	"testing"

	"transkeys/internal/errors"
)

func TestRoots_ResolveProjectBasePath(t *testing.T) {
	cfg := &Config{
		DefaultProject: "web",
		Projects: map[string]Project{
			"web": {SourceRoot: "apps/web/src", ProjectType: TypeApplication},
			"ui":  {SourceRoot: "libs/ui/src", ProjectType: TypeLibrary},
			"raw": {SourceRoot: "libs/raw/src"},
		},
	}
	roots := NewRoots(cfg)

	tests := []struct {
		name     string
		project  string
		wantBase string
		wantType Type
		wantErr  bool
	}{
		{
			name:     "named project",
			project:  "ui",
			wantBase: "libs/ui/src",
			wantType: TypeLibrary,
		},
		{
			name:     "empty name falls back to default project",
			project:  "",
			wantBase: "apps/web/src",
			wantType: TypeApplication,
		},
		{
			name:     "missing type defaults to application",
			project:  "raw",
			wantBase: "libs/raw/src",
			wantType: TypeApplication,
		},
		{
			name:    "unknown project errors",
			project: "ghost",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := roots.ResolveProjectBasePath(tt.project)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				if !errors.Is(err, errors.ErrProjectNotFound) {
					t.Errorf("error = %v, want ErrProjectNotFound", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ResolveProjectBasePath() error: %v", err)
			}
			if got.BasePath != tt.wantBase {
				t.Errorf("BasePath = %q, want %q", got.BasePath, tt.wantBase)
			}
			if got.ProjectType != tt.wantType {
				t.Errorf("ProjectType = %q, want %q", got.ProjectType, tt.wantType)
			}
		})
	}
}

func TestRoots_NoWorkspace(t *testing.T) {
	roots := NewRoots(nil)

	got, err := roots.ResolveProjectBasePath("")
	if err != nil {
		t.Fatalf("ResolveProjectBasePath() error: %v", err)
	}
	if got.BasePath != DefaultSourceRoot {
		t.Errorf("BasePath = %q, want the conventional default", got.BasePath)
	}

	if _, err := roots.ResolveProjectBasePath("anything"); err == nil {
		t.Error("named project without a workspace should error")
	}
}
