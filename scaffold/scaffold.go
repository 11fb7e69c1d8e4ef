// Package scaffold generates Go source skeletons for the external
// extension points laika's bundle package consumes: a markup parser, a
// template parser, a stylesheet parser, or a configuration provider.
// Generated code compiles against the matching ExtensionBundle field
// signature but leaves the grammar itself as a TODO for the bundle
// author to fill in.
package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"go/format"
	"text/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

// Kind names one of the extension points laika's bundle package exposes.
type Kind string

const (
	MarkupParser     Kind = "markup_parser"
	TemplateParser   Kind = "template_parser"
	StylesheetParser Kind = "stylesheet_parser"
	ConfigProvider   Kind = "config_provider"
)

func (k Kind) templateName() string { return string(k) + ".go.tmpl" }

// Spec describes one skeleton to generate.
type Spec struct {
	// Kind selects which extension point to scaffold.
	Kind Kind
	// PackageName is the Go package name for the generated file.
	PackageName string
	// TypeName is a human-readable name for the thing being scaffolded
	// (e.g. "rst", "jinja"), used only in comments and placeholder
	// values.
	TypeName string
}

// Generate renders spec's template and formats the result with
// go/format. The returned bytes are ready to write to disk.
func Generate(spec Spec) ([]byte, error) {
	if spec.PackageName == "" {
		return nil, fmt.Errorf("scaffold: PackageName is required")
	}
	if spec.TypeName == "" {
		spec.TypeName = spec.PackageName
	}

	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, spec.Kind.templateName(), spec); err != nil {
		return nil, fmt.Errorf("scaffold: rendering %s template: %w", spec.Kind, err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("scaffold: formatting generated source: %w", err)
	}
	return formatted, nil
}
