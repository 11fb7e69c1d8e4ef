package scaffold

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_MarkupParser(t *testing.T) {
	out, err := Generate(Spec{Kind: MarkupParser, PackageName: "rstparser", TypeName: "reStructuredText"})
	require.NoError(t, err)
	assert.Contains(t, string(out), "package rstparser")
	assert.Contains(t, string(out), "func Parse(source string) ([]document.Block, error)")
}

func TestGenerate_TemplateParser(t *testing.T) {
	out, err := Generate(Spec{Kind: TemplateParser, PackageName: "jinjatpl"})
	require.NoError(t, err)
	assert.Contains(t, string(out), "package jinjatpl")
	assert.Contains(t, string(out), "*document.UnresolvedDocument")
}

func TestGenerate_StylesheetParser(t *testing.T) {
	out, err := Generate(Spec{Kind: StylesheetParser, PackageName: "scsslite"})
	require.NoError(t, err)
	assert.Contains(t, string(out), "document.StyleSheet")
}

func TestGenerate_ConfigProvider(t *testing.T) {
	out, err := Generate(Spec{Kind: ConfigProvider, PackageName: "themeconf"})
	require.NoError(t, err)
	assert.Contains(t, string(out), "*config.Config")
}

func TestGenerate_MissingPackageName(t *testing.T) {
	_, err := Generate(Spec{Kind: MarkupParser})
	assert.Error(t, err)
}

func TestGenerate_UnknownKind(t *testing.T) {
	_, err := Generate(Spec{Kind: Kind("bogus"), PackageName: "x"})
	assert.Error(t, err)
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "parser.go")

	err := WriteFile(Spec{Kind: MarkupParser, PackageName: "rstparser"}, path)
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "package rstparser")
}
