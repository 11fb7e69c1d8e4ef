// Package main generates the Block/Span/TemplateSpan dispatch tables for
// the document package.
//
// This generator uses go/types to introspect the document package's
// struct types and discover which ones implement the block(), span(), or
// templateSpan() marker methods, then emits a type-switch "tag" function
// for each interface. The debug tree dumps (internal/mcpserver and
// cmd/laika parse) use these functions, which keeps them from drifting
// out of sync with document/elements.go's type list: adding a
// new element type and forgetting to register it in a hand-maintained
// switch is a silent bug, while forgetting to regenerate is a visible,
// checkable one.
//
// Usage:
//
//	go run ./internal/codegen/astgen
//	go run ./internal/codegen/astgen -check  # verify freshness
//
// Or via go generate:
//
//	//go:generate go run ../internal/codegen/astgen
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"go/types"
	"os"
	"path/filepath"
	"sort"
	"text/template"

	"golang.org/x/tools/go/packages"
)

const (
	blockMethod        = "block"
	spanMethod         = "span"
	templateSpanMethod = "templateSpan"
)

func main() {
	check := flag.Bool("check", false, "Compare generated output with existing file and exit non-zero if stale")
	flag.Parse()

	documentDir := "document"
	outputPath := filepath.Join("document", "dispatch_gen.go")
	if _, err := os.Stat("document"); os.IsNotExist(err) {
		// Likely running from the document directory via go generate.
		documentDir = "."
		outputPath = "dispatch_gen.go"
	}

	absOutput, err := filepath.Abs(outputPath)
	if err != nil {
		fatal("failed to resolve absolute path for %s: %v", outputPath, err)
	}

	// Overlay the generated file with a minimal stub so a stale or
	// missing dispatch_gen.go never breaks package loading.
	stub := []byte("package document\n")

	cfg := &packages.Config{
		Mode:    packages.NeedTypes | packages.NeedSyntax | packages.NeedName,
		Dir:     documentDir,
		Overlay: map[string][]byte{absOutput: stub},
	}
	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		fatal("failed to load document package: %v", err)
	}
	if len(pkgs) == 0 {
		fatal("no packages found")
	}
	pkg := pkgs[0]
	if len(pkg.Errors) > 0 {
		for _, e := range pkg.Errors {
			fmt.Fprintf(os.Stderr, "package error: %v\n", e)
		}
		fatal("package has errors")
	}

	scope := pkg.Types.Scope()

	var blocks, spans, templateSpans []string
	for _, name := range scope.Names() {
		obj := scope.Lookup(name)
		tn, ok := obj.(*types.TypeName)
		if !ok {
			continue
		}
		named, ok := tn.Type().(*types.Named)
		if !ok {
			continue
		}
		if _, ok := named.Underlying().(*types.Struct); !ok {
			continue
		}
		switch {
		case name == "Block" || name == "Span" || name == "TemplateSpan":
			continue
		}
		if hasMethod(named, blockMethod) {
			blocks = append(blocks, name)
		}
		if hasMethod(named, spanMethod) {
			spans = append(spans, name)
		}
		if hasMethod(named, templateSpanMethod) {
			templateSpans = append(templateSpans, name)
		}
	}
	sort.Strings(blocks)
	sort.Strings(spans)
	sort.Strings(templateSpans)

	tmpl, err := template.New("dispatch").Parse(dispatchTemplate)
	if err != nil {
		fatal("failed to parse template: %v", err)
	}

	var buf bytes.Buffer
	data := struct {
		Blocks        []string
		Spans         []string
		TemplateSpans []string
	}{blocks, spans, templateSpans}
	if err := tmpl.Execute(&buf, data); err != nil {
		fatal("failed to execute template: %v", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		fatal("failed to format generated code: %v\n\nGenerated code:\n%s", err, buf.String())
	}

	if *check {
		existing, err := os.ReadFile(outputPath)
		if err != nil {
			fatal("failed to read existing file %s: %v", outputPath, err)
		}
		if !bytes.Equal(existing, formatted) {
			fatal("%s is stale; run 'go generate ./document/' to regenerate", outputPath)
		}
		fmt.Printf("%s is up to date\n", outputPath)
		return
	}

	if err := os.WriteFile(outputPath, formatted, 0644); err != nil {
		fatal("failed to write %s: %v", outputPath, err)
	}
	fmt.Printf("Generated %s\n", outputPath)
}

// hasMethod reports whether named has a method with the given name,
// declared directly on the value type (not merely promoted from an
// embedded field pointer receiver), matching how the document package
// declares its marker methods.
func hasMethod(named *types.Named, methodName string) bool {
	for i := 0; i < named.NumMethods(); i++ {
		if named.Method(i).Name() == methodName {
			return true
		}
	}
	return false
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

const dispatchTemplate = `// Code generated by internal/codegen/astgen; DO NOT EDIT.
//
// This file contains tag-dispatch functions for document element types,
// kept in sync with document/elements.go by the astgen generator rather
// than hand-maintained type switches.

package document

// BlockTag returns a stable, human-readable tag for the concrete type of
// b, used by diagnostics and debug tree dumps.
func BlockTag(b Block) string {
	switch b.(type) {
{{- range .Blocks}}
	case {{.}}:
		return "{{.}}"
{{- end}}
	default:
		return "Block"
	}
}

// SpanTag returns a stable, human-readable tag for the concrete type of
// s, used by diagnostics and debug tree dumps.
func SpanTag(s Span) string {
	switch s.(type) {
{{- range .Spans}}
	case {{.}}:
		return "{{.}}"
{{- end}}
	default:
		return "Span"
	}
}

// TemplateSpanTag returns a stable, human-readable tag for the concrete
// type of t, used by diagnostics and debug tree dumps.
func TemplateSpanTag(t TemplateSpan) string {
	switch t.(type) {
{{- range .TemplateSpans}}
	case {{.}}:
		return "{{.}}"
{{- end}}
	default:
		return "TemplateSpan"
	}
}
`
