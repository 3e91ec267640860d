package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vango-dev/termkit/internal/errors"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.Paths.Components != DefaultComponentsPath {
		t.Errorf("Paths.Components = %q, want %q", cfg.Paths.Components, DefaultComponentsPath)
	}
	if cfg.Paths.Ledger != ".termkit/ledger.json" {
		t.Errorf("Paths.Ledger = %q", cfg.Paths.Ledger)
	}
	if cfg.Registry.Source != SourceEmbedded {
		t.Errorf("Registry.Source = %q, want %q", cfg.Registry.Source, SourceEmbedded)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()

	_, err := Load(tmpDir)
	if !errors.HasCode(err, "E101") {
		t.Errorf("Load(missing) error = %v, want E101", err)
	}

	writeConfig(t, tmpDir, `{
  "name": "demo",
  "paths": {"components": "pkg/widgets"},
  "registry": {"source": "http", "url": "https://registry.example.com"}
}
`)

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Name != "demo" {
		t.Errorf("Name = %q, want demo", cfg.Name)
	}
	if cfg.ComponentsPath() != "pkg/widgets" {
		t.Errorf("ComponentsPath() = %q", cfg.ComponentsPath())
	}
	if cfg.LedgerPath() != ".termkit/ledger.json" {
		t.Errorf("LedgerPath() = %q, want default", cfg.LedgerPath())
	}
	if cfg.Registry.URL != "https://registry.example.com" {
		t.Errorf("Registry.URL = %q", cfg.Registry.URL)
	}
	if cfg.Path() != filepath.Join(tmpDir, ConfigFileName) {
		t.Errorf("Path() = %q", cfg.Path())
	}
	if cfg.Dir() != tmpDir {
		t.Errorf("Dir() = %q", cfg.Dir())
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, `{"paths": `)

	if _, err := Load(tmpDir); !errors.HasCode(err, "E100") {
		t.Errorf("Load error = %v, want E100", err)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, `{"registry": {"source": "embedded"}}`)

	t.Setenv("TERMKIT_REGISTRY_SOURCE", "s3")
	t.Setenv("TERMKIT_REGISTRY_BUCKET", "widgets")
	t.Setenv("TERMKIT_PATHS_COMPONENTS", "ui")

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Registry.Source != SourceS3 {
		t.Errorf("Registry.Source = %q, want s3", cfg.Registry.Source)
	}
	if cfg.Registry.Bucket != "widgets" {
		t.Errorf("Registry.Bucket = %q, want widgets", cfg.Registry.Bucket)
	}
	if cfg.Registry.Region != DefaultRegion {
		t.Errorf("Registry.Region = %q, want %q", cfg.Registry.Region, DefaultRegion)
	}
	if cfg.ComponentsPath() != "ui" {
		t.Errorf("ComponentsPath() = %q, want ui", cfg.ComponentsPath())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"http with url", func(c *Config) { c.Registry = RegistryConfig{Source: SourceHTTP, URL: "http://x"} }, false},
		{"http without url", func(c *Config) { c.Registry = RegistryConfig{Source: SourceHTTP} }, true},
		{"s3 without bucket", func(c *Config) { c.Registry = RegistryConfig{Source: SourceS3} }, true},
		{"unknown source", func(c *Config) { c.Registry.Source = "ftp" }, true},
		{"absolute components", func(c *Config) { c.Paths.Components = "/tmp/ui" }, true},
		{"escaping ledger", func(c *Config) { c.Paths.Ledger = "../ledger.json" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.HasCode(err, "E100") {
				t.Errorf("Validate() error = %v, want E100", err)
			}
		})
	}
}

func TestSave(t *testing.T) {
	tmpDir := t.TempDir()

	cfg := New()
	cfg.Name = "saved"
	cfg.Registry = RegistryConfig{Source: SourceHTTP, URL: "http://localhost:8080"}

	if err := cfg.Save(); err == nil {
		t.Error("Save() without a path should fail")
	}

	configPath := filepath.Join(tmpDir, ConfigFileName)
	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("SaveTo error: %v", err)
	}

	loaded, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if loaded.Name != "saved" || loaded.Registry.URL != "http://localhost:8080" {
		t.Errorf("loaded = %+v", loaded)
	}

	loaded.Name = "renamed"
	if err := loaded.Save(); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	again, _ := Load(tmpDir)
	if again.Name != "renamed" {
		t.Errorf("Name = %q after Save", again.Name)
	}
}

func TestExists(t *testing.T) {
	tmpDir := t.TempDir()

	if Exists(tmpDir) {
		t.Error("Exists should return false for empty dir")
	}
	writeConfig(t, tmpDir, "{}")
	if !Exists(tmpDir) {
		t.Error("Exists should return true when termkit.json exists")
	}
}

func TestFindProjectRoot(t *testing.T) {
	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, "{}")

	subDir := filepath.Join(tmpDir, "internal", "tui", "badge")
	if err := os.MkdirAll(subDir, 0755); err != nil {
		t.Fatal(err)
	}

	root, err := FindProjectRoot(subDir)
	if err != nil {
		t.Fatalf("FindProjectRoot error: %v", err)
	}

	want, _ := filepath.Abs(tmpDir)
	if root != want {
		t.Errorf("FindProjectRoot = %q, want %q", root, want)
	}

	if _, err := FindProjectRoot(t.TempDir()); !errors.HasCode(err, "E101") {
		t.Errorf("FindProjectRoot(no project) error = %v, want E101", err)
	}
}

func TestLoadFromWorkingDir(t *testing.T) {
	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, `{"name": "wd"}`)
	t.Chdir(tmpDir)

	cfg, err := LoadFromWorkingDir()
	if err != nil {
		t.Fatalf("LoadFromWorkingDir error: %v", err)
	}
	if cfg.Name != "wd" {
		t.Errorf("Name = %q, want wd", cfg.Name)
	}
}
