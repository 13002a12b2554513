package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestBuildReference(t *testing.T) {
	ref := buildReference("github.com/go-drift/aria")

	if ref.Module != "github.com/go-drift/aria" {
		t.Errorf("module = %q", ref.Module)
	}
	if len(ref.States) != 9 {
		t.Errorf("states = %d, want 9", len(ref.States))
	}
	if len(ref.Properties) != 23 {
		t.Errorf("properties = %d, want 23", len(ref.Properties))
	}

	if ref.States[0].Name != "busy" || ref.States[0].Type != "boolean" || ref.States[0].Default != "false" {
		t.Errorf("busy row = %+v", ref.States[0])
	}

	byName := map[string]Attribute{}
	for _, a := range ref.Properties {
		byName[a.Name] = a
	}
	if a := byName["labelledby"]; a.Type != "reference" || a.Default != "" {
		t.Errorf("labelledby row = %+v", a)
	}
	if a := byName["label"]; a.Type != "string" || a.Default != `""` {
		t.Errorf("label row = %+v", a)
	}
	if a := byName["orientation"]; a.Type != "enum" || a.Default != "horizontal" {
		t.Errorf("orientation row = %+v", a)
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ref.yaml")

	ref := buildReference("github.com/go-drift/aria")
	if err := writeYAML(path, ref); err != nil {
		t.Fatalf("writeYAML: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	var got Reference
	if err := yaml.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Module != ref.Module || len(got.States) != len(ref.States) || len(got.Properties) != len(ref.Properties) {
		t.Errorf("round-tripped reference differs: %+v", got)
	}
}

func TestWriteMarkdown(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ref.md")

	if err := writeMarkdown(path, buildReference("github.com/go-drift/aria")); err != nil {
		t.Fatalf("writeMarkdown: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	text := string(data)
	for _, want := range []string{"## States", "## Properties", "| busy | boolean | false |", "| labelledby | reference | (none) |"} {
		if !strings.Contains(text, want) {
			t.Errorf("markdown missing %q", want)
		}
	}
}

func TestLoadOptionalMissing(t *testing.T) {
	cfg, err := LoadOptional(t.TempDir())
	if err != nil {
		t.Fatalf("LoadOptional on empty dir: %v", err)
	}
	if cfg.Doc.Output != "" || len(cfg.Doc.Formats) != 0 {
		t.Errorf("missing config not empty: %+v", cfg)
	}
}

func TestResolveDefaults(t *testing.T) {
	dir := t.TempDir()
	gomod := "module example.com/acme/widgets\n\ngo 1.24.0\n"
	if err := os.WriteFile(filepath.Join(dir, "go.mod"), []byte(gomod), 0644); err != nil {
		t.Fatal(err)
	}

	res, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.ModulePath != "example.com/acme/widgets" {
		t.Errorf("module path = %q", res.ModulePath)
	}
	if res.Output != filepath.Join(dir, "docs") {
		t.Errorf("output = %q", res.Output)
	}
	if len(res.Formats) != 2 {
		t.Errorf("formats = %v", res.Formats)
	}
}

func TestResolveWithConfig(t *testing.T) {
	dir := t.TempDir()
	gomod := "module example.com/acme/widgets\n\ngo 1.24.0\n"
	if err := os.WriteFile(filepath.Join(dir, "go.mod"), []byte(gomod), 0644); err != nil {
		t.Fatal(err)
	}
	cfg := "doc:\n  output: reference\n  formats: [yaml]\n"
	if err := os.WriteFile(filepath.Join(dir, "aria.yaml"), []byte(cfg), 0644); err != nil {
		t.Fatal(err)
	}

	res, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.Output != "reference" {
		t.Errorf("output = %q", res.Output)
	}
	if len(res.Formats) != 1 || res.Formats[0] != "yaml" {
		t.Errorf("formats = %v", res.Formats)
	}
}

func TestResolveRejectsUnknownFormat(t *testing.T) {
	dir := t.TempDir()
	gomod := "module example.com/acme/widgets\n\ngo 1.24.0\n"
	if err := os.WriteFile(filepath.Join(dir, "go.mod"), []byte(gomod), 0644); err != nil {
		t.Fatal(err)
	}
	cfg := "doc:\n  formats: [pdf]\n"
	if err := os.WriteFile(filepath.Join(dir, "aria.yaml"), []byte(cfg), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Resolve(dir); err == nil {
		t.Error("Resolve accepted unknown format")
	}
}
