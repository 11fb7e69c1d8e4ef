package legacy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_Substitution(t *testing.T) {
	result := Normalize("Hello {{name}}, welcome to {{ site.title }}.")
	assert.Equal(t, "Hello ${name}, welcome to ${site.title}.", result.Source)
	require.Len(t, result.Issues, 2)
	assert.Equal(t, "info", result.Issues[0].Severity.String())
	assert.False(t, result.HasWarnings())
}

func TestNormalize_LegacyDirective(t *testing.T) {
	result := Normalize(`:note type="warning" : be careful here`)
	assert.Equal(t, `@:note type="warning" { be careful here } @:@`, result.Source)
	require.Len(t, result.Issues, 1)
	assert.Contains(t, result.Issues[0].Message, "note")
}

func TestNormalize_LegacyDirectiveNoBody(t *testing.T) {
	result := Normalize(`:br`)
	assert.Equal(t, `@:br`, result.Source)
	require.Len(t, result.Issues, 1)
}

func TestNormalize_IndentationPreserved(t *testing.T) {
	result := Normalize("  :note : indented")
	assert.Equal(t, `  @:note { indented } @:@`, result.Source)
}

func TestNormalize_AmbiguousBodyWarns(t *testing.T) {
	result := Normalize(`:note : contains @:@ already`)
	require.Len(t, result.Issues, 1)
	assert.True(t, result.HasWarnings())
}

func TestNormalize_NonDirectiveLinesUntouched(t *testing.T) {
	result := Normalize("plain paragraph text\nanother line")
	assert.Equal(t, "plain paragraph text\nanother line", result.Source)
	assert.Empty(t, result.Issues)
}

func TestResult_HasWarnings_Empty(t *testing.T) {
	assert.False(t, Result{}.HasWarnings())
}
