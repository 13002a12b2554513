// Package main provides a reference-documentation generator for the aria
// library. It renders the state and property descriptor tables, including
// each attribute's expected value type and default, as YAML and Markdown.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/aria/pkg/aria"
)

func main() {
	out := flag.String("out", "", "output directory (default: <doc.output> from aria.yaml, or <root>/docs)")
	format := flag.String("format", "", "output format: yaml, markdown, or both (default: from aria.yaml)")
	flag.Parse()

	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving working directory: %v\n", err)
		os.Exit(1)
	}

	res, err := Resolve(cwd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving configuration: %v\n", err)
		os.Exit(1)
	}
	if *out != "" {
		res.Output = *out
	}
	switch *format {
	case "":
	case "yaml", "markdown":
		res.Formats = []string{*format}
	case "both":
		res.Formats = []string{"yaml", "markdown"}
	default:
		fmt.Fprintf(os.Stderr, "Unknown format %q (want yaml, markdown, or both)\n", *format)
		os.Exit(1)
	}

	if err := os.MkdirAll(res.Output, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	ref := buildReference(res.ModulePath)

	for _, f := range res.Formats {
		var path string
		switch f {
		case "yaml":
			path = filepath.Join(res.Output, "states-and-properties.yaml")
			err = writeYAML(path, ref)
		case "markdown":
			path = filepath.Join(res.Output, "states-and-properties.md")
			err = writeMarkdown(path, ref)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", path, err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", path)
	}
}

// Attribute describes one state or property in the generated reference.
type Attribute struct {
	Name    string `yaml:"name"`
	Type    string `yaml:"type"`
	Default string `yaml:"default,omitempty"`
}

// Reference is the full generated reference document.
type Reference struct {
	Module     string      `yaml:"module"`
	States     []Attribute `yaml:"states"`
	Properties []Attribute `yaml:"properties"`
}

// buildReference renders the live descriptor tables into a Reference.
func buildReference(modulePath string) Reference {
	ref := Reference{Module: modulePath}

	for _, state := range aria.AllStates() {
		desc, ok := aria.DescribeState(state)
		if !ok {
			continue
		}
		ref.States = append(ref.States, Attribute{
			Name:    desc.Name,
			Type:    desc.Type.String(),
			Default: defaultString(aria.DefaultForState(state)),
		})
	}

	for _, prop := range aria.AllProperties() {
		desc, ok := aria.DescribeProperty(prop)
		if !ok {
			continue
		}
		ref.Properties = append(ref.Properties, Attribute{
			Name:    desc.Name,
			Type:    desc.Type.String(),
			Default: defaultString(aria.DefaultForProperty(prop)),
		})
	}

	return ref
}

// defaultString renders an attribute default, or "" when the attribute has
// none (relationship properties).
func defaultString(v aria.Value) string {
	if v == nil {
		return ""
	}
	s := aria.ToString(v)
	if s == "" {
		// An empty-string default is still a default; make it visible.
		return `""`
	}
	return s
}

func writeYAML(path string, ref Reference) error {
	data, err := yaml.Marshal(ref)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func writeMarkdown(path string, ref Reference) error {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# Accessibility States and Properties\n\n")
	fmt.Fprintf(&sb, "Generated from the descriptor tables of `%s`.\n\n", ref.Module)

	sb.WriteString("## States\n\n")
	writeAttributeTable(&sb, ref.States)

	sb.WriteString("\n## Properties\n\n")
	writeAttributeTable(&sb, ref.Properties)

	return os.WriteFile(path, []byte(sb.String()), 0644)
}

func writeAttributeTable(sb *strings.Builder, attrs []Attribute) {
	sb.WriteString("| Name | Type | Default |\n")
	sb.WriteString("|------|------|---------|\n")
	for _, a := range attrs {
		def := a.Default
		if def == "" {
			def = "(none)"
		}
		fmt.Fprintf(sb, "| %s | %s | %s |\n", a.Name, a.Type, def)
	}
}
