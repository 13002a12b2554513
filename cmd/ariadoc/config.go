package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/mod/modfile"
	"gopkg.in/yaml.v3"
)

// Config represents the optional aria.yaml configuration.
type Config struct {
	Doc DocConfig `yaml:"doc"`
}

// DocConfig contains documentation generator settings.
type DocConfig struct {
	Output  string   `yaml:"output,omitempty"`
	Formats []string `yaml:"formats,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root       string
	ModulePath string
	Output     string
	Formats    []string
}

// LoadOptional reads aria.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, "aria.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read aria.yaml: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse aria.yaml: %w", err)
	}

	return &cfg, nil
}

// Resolve loads aria.yaml (if present) and resolves defaults against the
// module rooted at or above dir.
func Resolve(dir string) (*Resolved, error) {
	root, err := findModuleRoot(dir)
	if err != nil {
		return nil, err
	}

	modulePath, err := readModulePath(root)
	if err != nil {
		return nil, err
	}

	cfg, err := LoadOptional(root)
	if err != nil {
		return nil, err
	}

	res := &Resolved{
		Root:       root,
		ModulePath: modulePath,
		Output:     cfg.Doc.Output,
		Formats:    cfg.Doc.Formats,
	}
	if res.Output == "" {
		res.Output = filepath.Join(root, "docs")
	}
	if len(res.Formats) == 0 {
		res.Formats = []string{"yaml", "markdown"}
	}
	for _, f := range res.Formats {
		if f != "yaml" && f != "markdown" {
			return nil, fmt.Errorf("unknown format %q in aria.yaml (want yaml or markdown)", f)
		}
	}

	return res, nil
}

// findModuleRoot walks up from dir until it finds a go.mod.
func findModuleRoot(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(abs, "go.mod")); err == nil {
			return abs, nil
		}
		parent := filepath.Dir(abs)
		if parent == abs {
			return "", fmt.Errorf("go.mod not found in %s or any parent directory", dir)
		}
		abs = parent
	}
}

// readModulePath parses go.mod and returns the module path.
func readModulePath(root string) (string, error) {
	path := filepath.Join(root, "go.mod")
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}

	f, err := modfile.ParseLax(path, data, nil)
	if err != nil {
		return "", fmt.Errorf("failed to parse go.mod: %w", err)
	}
	if f.Module == nil || f.Module.Mod.Path == "" {
		return "", fmt.Errorf("go.mod at %s has no module path", root)
	}

	return f.Module.Mod.Path, nil
}
