package workspace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

const sampleConfig = `langs:
  - en
  - fr
rootTranslationsPath: assets/i18n
defaultProject: web
keysManager:
  defaultValue: todo
  input:
    - apps/web/src
  output: apps/web/src/assets/i18n
projects:
  web:
    sourceRoot: apps/web/src
    projectType: application
  ui:
    sourceRoot: libs/ui/src
    projectType: library
`

func TestLoad_WithConfigFile(t *testing.T) {
	viper.Reset()

	dir := t.TempDir()
	path := filepath.Join(dir, "transkeys.yaml")
	if err := os.WriteFile(path, []byte(sampleConfig), 0o600); err != nil {
		t.Fatal(err)
	}

	Init()

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if len(cfg.Langs) != 2 || cfg.Langs[0] != "en" {
		t.Errorf("Langs = %v", cfg.Langs)
	}
	if cfg.RootTranslationsPath != "assets/i18n" {
		t.Errorf("RootTranslationsPath = %q", cfg.RootTranslationsPath)
	}
	if cfg.KeysManager.DefaultValue != "todo" {
		t.Errorf("KeysManager.DefaultValue = %q", cfg.KeysManager.DefaultValue)
	}
	if cfg.Projects["ui"].SourceRoot != "libs/ui/src" {
		t.Errorf("Projects[ui] = %+v", cfg.Projects["ui"])
	}
	if cfg.Projects["ui"].ProjectType != TypeLibrary {
		t.Errorf("Projects[ui].ProjectType = %q", cfg.Projects["ui"].ProjectType)
	}
}

func TestLoad_NoConfigFile(t *testing.T) {
	viper.Reset()

	// Anchor the search path in an empty directory
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	Init()

	cfg, err := Load("")
	if err != nil {
		t.Errorf("Load() with no config file should not error: %v", err)
	}
	if cfg == nil {
		t.Error("expected an empty config to be returned")
	}
}

func TestLoad_ExplicitPathNotFound(t *testing.T) {
	viper.Reset()
	Init()

	if _, err := Load("/non/existent/transkeys.yaml"); err == nil {
		t.Error("Load() with non-existent explicit path should error")
	}
}
