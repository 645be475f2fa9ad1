package config

import "testing"

func TestInterpolate(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		sourceRoot string
		want       string
	}{
		{
			name:       "no token is identity",
			path:       "src/assets/i18n",
			sourceRoot: "apps/my-app/src",
			want:       "src/assets/i18n",
		},
		{
			name:       "token at start",
			path:       "${sourceRoot}/assets/i18n",
			sourceRoot: "apps/my-app/src",
			want:       "apps/my-app/src/assets/i18n",
		},
		{
			name:       "relative segments are preserved uncollapsed",
			path:       "${sourceRoot}/../public/i18n",
			sourceRoot: "libs/my-lib/src",
			want:       "libs/my-lib/src/../public/i18n",
		},
		{
			name:       "every occurrence is replaced",
			path:       "${sourceRoot}/a/${sourceRoot}/b",
			sourceRoot: "src",
			want:       "src/a/src/b",
		},
		{
			name:       "empty root",
			path:       "${sourceRoot}/i18n",
			sourceRoot: "",
			want:       "/i18n",
		},
		{
			name:       "empty path",
			path:       "",
			sourceRoot: "src",
			want:       "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Interpolate(tt.path, tt.sourceRoot); got != tt.want {
				t.Errorf("Interpolate(%q, %q) = %q, want %q", tt.path, tt.sourceRoot, got, tt.want)
			}
		})
	}
}

func TestInterpolateAll(t *testing.T) {
	in := []string{"${sourceRoot}/a", "plain/b"}
	got := InterpolateAll(in, "apps/web/src")

	if got[0] != "apps/web/src/a" || got[1] != "plain/b" {
		t.Errorf("InterpolateAll() = %v", got)
	}

	// Input must be untouched
	if in[0] != "${sourceRoot}/a" {
		t.Errorf("InterpolateAll mutated its input: %v", in)
	}

	if InterpolateAll(nil, "src") != nil {
		t.Error("InterpolateAll(nil) should be nil")
	}
}
