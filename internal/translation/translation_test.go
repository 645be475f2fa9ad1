package translation

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"transkeys/internal/config"
)

func TestRead_MissingFileIsEmpty(t *testing.T) {
	got, err := Read(filepath.Join(t.TempDir(), "en.json"), config.FormatJSON)
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Read() = %v, want empty map", got)
	}
}

func TestRead_FlattensNestedJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "en.json")
	content := `{"home": {"title": "Home", "nav": {"next": "Next"}}, "plain": "Value"}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := Read(path, config.FormatJSON)
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}

	want := map[string]string{
		"home.title":    "Home",
		"home.nav.next": "Next",
		"plain":         "Value",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Read() = %v, want %v", got, want)
	}
}

func TestUpdate_AddsMissingKeysOnly(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "i18n", "en.json")

	added, err := Update(path, config.FormatJSON, []string{"a", "b"}, "missing")
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if added != 2 {
		t.Errorf("added = %d, want 2", added)
	}

	// Simulate a translated value, then update with one new key
	entries, err := Read(path, config.FormatJSON)
	if err != nil {
		t.Fatal(err)
	}
	entries["a"] = "translated"
	if err := Write(path, config.FormatJSON, entries); err != nil {
		t.Fatal(err)
	}

	added, err = Update(path, config.FormatJSON, []string{"a", "b", "c"}, "missing")
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if added != 1 {
		t.Errorf("added = %d, want 1", added)
	}

	got, err := Read(path, config.FormatJSON)
	if err != nil {
		t.Fatal(err)
	}
	if got["a"] != "translated" {
		t.Errorf("existing value was overwritten: %q", got["a"])
	}
	if got["c"] != "missing" {
		t.Errorf("new key value = %q, want default", got["c"])
	}
}

func TestUpdate_NoChangesNoRewrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "en.json")

	if _, err := Update(path, config.FormatJSON, []string{"a"}, "missing"); err != nil {
		t.Fatal(err)
	}
	info1, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := Update(path, config.FormatJSON, []string{"a"}, "missing"); err != nil {
		t.Fatal(err)
	}
	info2, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}

	if !info1.ModTime().Equal(info2.ModTime()) {
		t.Error("file was rewritten although nothing changed")
	}
}

func TestWriteRead_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fr.yaml")
	in := map[string]string{"home.title": "Accueil"}

	if err := Write(path, config.FormatYAML, in); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	got, err := Read(path, config.FormatYAML)
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if got["home.title"] != "Accueil" {
		t.Errorf("Read() = %v", got)
	}
}

func TestWriteRead_POT(t *testing.T) {
	path := filepath.Join(t.TempDir(), "en.pot")
	in := map[string]string{
		"home.title": "Home",
		"quoted":     `say "hi"`,
	}

	if err := Write(path, config.FormatPOT, in); err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), `msgid ""`) {
		t.Errorf("pot output missing header:\n%s", data)
	}

	got, err := Read(path, config.FormatPOT)
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if !reflect.DeepEqual(got, in) {
		t.Errorf("Read() = %v, want %v", got, in)
	}
}

func TestWrite_UnknownFormat(t *testing.T) {
	err := Write(filepath.Join(t.TempDir(), "en.ini"), config.FileFormat("ini"), nil)
	if err == nil {
		t.Error("Write() with unknown format should error")
	}
}
