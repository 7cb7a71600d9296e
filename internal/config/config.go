// Package config loads CLI configuration from YAML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yehyu2004/go-md2latex/internal/fileutil"
	"github.com/yehyu2004/go-md2latex/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
)

// Config holds all configuration for document generation.
type Config struct {
	Document DocumentConfig `yaml:"document"`
	Meta     MetaConfig     `yaml:"meta"`
	Output   OutputConfig   `yaml:"output"`
	Build    BuildConfig    `yaml:"build"`
}

// DocumentConfig defines LaTeX document shell options.
type DocumentConfig struct {
	Class          string  `yaml:"class"`          // "article", "report", "book"
	Paper          string  `yaml:"paper"`          // "a4", "letter"
	FontSize       int     `yaml:"fontSize"`       // 10, 11, 12
	Margin         float64 `yaml:"margin"`         // inches
	Template       string  `yaml:"template"`       // shell template name (empty = default)
	HighlightStyle string  `yaml:"highlightStyle"` // chroma style for code blocks
}

// MetaConfig defines document metadata defaults. Front matter in the input
// document takes priority over these.
type MetaConfig struct {
	Title  string `yaml:"title"`
	Author string `yaml:"author"`
	Date   string `yaml:"date"` // supports "auto" and "auto:FORMAT"
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = same as source)
}

// BuildConfig defines compilation options.
type BuildConfig struct {
	Engine         string `yaml:"engine"` // "pdflatex", "xelatex", "lualatex"
	TexOnly        bool   `yaml:"texOnly"`
	TimeoutSeconds int    `yaml:"timeoutSeconds"`
	Workers        int    `yaml:"workers"` // 0 = auto
}

// DefaultConfig returns a neutral configuration: zero values mean "use the
// library defaults".
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard
// locations. Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	return &cfg, nil
}

// SearchPaths returns the candidate paths for a config name, in lookup
// order: current directory first, then the user config directory.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, "go-md2latex", name+ext))
		}
	}

	return paths
}

// resolveConfigPath searches for a config file by name in standard locations.
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
