package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.yaml")
	content := `output:
  defaultDir: /exports
  format: pdf
css:
  style: dark
widgets:
  baseCDN: https://mirror.example/npm/
  version: 1.0.0
priority:
  - text/plain
  - text/html
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Output.DefaultDir != "/exports" || cfg.Output.Format != "pdf" {
		t.Errorf("output config = %+v", cfg.Output)
	}
	if cfg.CSS.Style != "dark" {
		t.Errorf("style = %q", cfg.CSS.Style)
	}
	if cfg.Widgets.BaseCDN != "https://mirror.example/npm/" || cfg.Widgets.Version != "1.0.0" {
		t.Errorf("widgets config = %+v", cfg.Widgets)
	}
	if len(cfg.Priority) != 2 || cfg.Priority[0] != "text/plain" {
		t.Errorf("priority = %v", cfg.Priority)
	}
}

func TestLoadConfigResolvesNameInWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "export.yml"), []byte("output:\n  format: pdf\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(oldWD); err != nil {
			t.Error(err)
		}
	})

	// A bare name (no path separator) is searched, not opened directly.
	cfg, err := LoadConfig("export")
	if err != nil {
		t.Fatalf("LoadConfig(name) error = %v", err)
	}
	if cfg.Output.Format != "pdf" {
		t.Errorf("format = %q, want pdf", cfg.Output.Format)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(""); !errors.Is(err, ErrEmptyConfigName) {
		t.Errorf("empty name error = %v, want ErrEmptyConfigName", err)
	}

	missing := filepath.Join(t.TempDir(), "nope.yaml")
	if _, err := LoadConfig(missing); !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("missing file error = %v, want ErrConfigNotFound", err)
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("output: [broken"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(bad); !errors.Is(err, ErrConfigParse) {
		t.Errorf("bad YAML error = %v, want ErrConfigParse", err)
	}
}

func TestLoadConfigRejectsUnknownFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "typo.yaml")
	if err := os.WriteFile(path, []byte("outptu:\n  format: pdf\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); !errors.Is(err, ErrConfigParse) {
		t.Errorf("unknown field error = %v, want ErrConfigParse", err)
	}
}
