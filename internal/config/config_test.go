package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const sampleConfig = `document:
  class: report
  paper: letter
  fontSize: 12
  margin: 0.5
  highlightStyle: monokai
meta:
  author: Docs Team
  date: auto
output:
  defaultDir: out
build:
  engine: xelatex
  texOnly: true
  timeoutSeconds: 300
  workers: 4
`

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Run("full config from path", func(t *testing.T) {
		path := writeConfig(t, "custom.yaml", sampleConfig)

		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error: %v", err)
		}
		if cfg.Document.Class != "report" {
			t.Errorf("Class = %q, want %q", cfg.Document.Class, "report")
		}
		if cfg.Document.FontSize != 12 {
			t.Errorf("FontSize = %d, want 12", cfg.Document.FontSize)
		}
		if cfg.Document.Margin != 0.5 {
			t.Errorf("Margin = %v, want 0.5", cfg.Document.Margin)
		}
		if cfg.Meta.Author != "Docs Team" {
			t.Errorf("Author = %q, want %q", cfg.Meta.Author, "Docs Team")
		}
		if cfg.Build.Engine != "xelatex" {
			t.Errorf("Engine = %q, want %q", cfg.Build.Engine, "xelatex")
		}
		if !cfg.Build.TexOnly {
			t.Error("TexOnly = false, want true")
		}
		if cfg.Build.Workers != 4 {
			t.Errorf("Workers = %d, want 4", cfg.Build.Workers)
		}
	})

	t.Run("empty name", func(t *testing.T) {
		if _, err := LoadConfig(""); !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("error = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("missing file path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "absent.yaml")
		if _, err := LoadConfig(path); !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("missing config name", func(t *testing.T) {
		if _, err := LoadConfig("definitely-not-a-real-config-name"); !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("unknown key rejected", func(t *testing.T) {
		path := writeConfig(t, "bad.yaml", "documnt:\n  class: article\n")
		if _, err := LoadConfig(path); !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeConfig(t, "broken.yaml", "document: [\n")
		if _, err := LoadConfig(path); !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if *cfg != (Config{}) {
		t.Errorf("DefaultConfig() = %+v, want zero value", cfg)
	}
}

func TestSearchPaths(t *testing.T) {
	paths := SearchPaths("md2latex")

	if len(paths) < 2 {
		t.Fatalf("SearchPaths returned %d paths, want at least 2", len(paths))
	}
	if paths[0] != "md2latex.yaml" {
		t.Errorf("paths[0] = %q, want %q", paths[0], "md2latex.yaml")
	}
	if paths[1] != "md2latex.yml" {
		t.Errorf("paths[1] = %q, want %q", paths[1], "md2latex.yml")
	}
	for _, p := range paths[2:] {
		if !filepath.IsAbs(p) {
			t.Errorf("user config path %q should be absolute", p)
		}
	}
}
