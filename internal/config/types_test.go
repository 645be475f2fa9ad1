package config

import (
	"encoding/json"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestStringList_UnmarshalYAML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want StringList
	}{
		{
			name: "single string normalizes to one-element list",
			in:   `input: src`,
			want: StringList{"src"},
		},
		{
			name: "sequence stays a list",
			in:   "input:\n  - src\n  - libs/shared/src",
			want: StringList{"src", "libs/shared/src"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var doc struct {
				Input StringList `yaml:"input"`
			}
			if err := yaml.Unmarshal([]byte(tt.in), &doc); err != nil {
				t.Fatalf("Unmarshal() error: %v", err)
			}
			if !reflect.DeepEqual(doc.Input, tt.want) {
				t.Errorf("Input = %v, want %v", doc.Input, tt.want)
			}
		})
	}
}

func TestStringList_UnmarshalJSON(t *testing.T) {
	var doc struct {
		Input StringList `json:"input"`
	}
	if err := json.Unmarshal([]byte(`{"input":"src"}`), &doc); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if !reflect.DeepEqual(doc.Input, StringList{"src"}) {
		t.Errorf("Input = %v, want one-element list", doc.Input)
	}
}

func TestFileFormat_Valid(t *testing.T) {
	for _, f := range FileFormats() {
		if !f.Valid() {
			t.Errorf("%q should be valid", f)
		}
	}
	if FileFormat("ini").Valid() {
		t.Error("ini should not be valid")
	}
	if FileFormat("").Valid() {
		t.Error("empty format should not be valid")
	}
}
