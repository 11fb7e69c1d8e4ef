package pipeline

import (
	"context"
	"testing"

	"github.com/erraggy/laika/bundle"
	"github.com/erraggy/laika/config"
	"github.com/erraggy/laika/document"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plainMarkupParser(source string) ([]document.Block, error) {
	return []document.Block{
		document.Paragraph{Content: []document.Span{document.Text{Content: source}}},
	}, nil
}

func TestParseWithOptions_NoHeader(t *testing.T) {
	lib := bundle.New("lib", bundle.Library)
	lib.MarkupParser = plainMarkupParser

	result, err := ParseWithOptions(
		WithSource("hello world"),
		WithSourceName("doc.md"),
		WithBundle(lib),
	)
	require.NoError(t, err)
	require.Len(t, result.Document.Content, 1)
	para := result.Document.Content[0].(document.Paragraph)
	assert.Equal(t, "hello world", para.Content[0].(document.Text).Content)
}

func TestParseWithOptions_WithHeader(t *testing.T) {
	lib := bundle.New("lib", bundle.Library)
	lib.MarkupParser = plainMarkupParser

	input := "---\ntitle = \"My Doc\"\n---\nbody text"
	result, err := ParseWithOptions(
		WithSource(input),
		WithSourceName("doc.md"),
		WithBundle(lib),
	)
	require.NoError(t, err)
	title, err := config.Get[string](result.Config, "title")
	require.NoError(t, err)
	assert.Equal(t, "My Doc", title)
	para := result.Document.Content[0].(document.Paragraph)
	assert.Equal(t, "body text", para.Content[0].(document.Text).Content)
}

func TestParseWithOptions_NoInputSource(t *testing.T) {
	_, err := ParseWithOptions()
	assert.Error(t, err)
}

func TestParseWithOptions_MultipleInputSources(t *testing.T) {
	_, err := ParseWithOptions(WithSource("a"), WithBytes([]byte("b")))
	assert.Error(t, err)
}

func TestParseAll_RunsConcurrently(t *testing.T) {
	lib := bundle.New("lib", bundle.Library)
	lib.MarkupParser = plainMarkupParser

	inputs := []Input{
		{Name: "one", Options: []Option{WithSource("a"), WithBundle(lib)}},
		{Name: "two", Options: []Option{WithSource("b"), WithBundle(lib)}},
	}
	results := ParseAll(context.Background(), inputs)
	require.Len(t, results, 2)
	for _, r := range results {
		require.NoError(t, r.Err)
		require.NotNil(t, r.Result)
	}
}

func TestMessageFilters_Thresholds(t *testing.T) {
	d := DefaultMessageFilters()
	assert.True(t, d.ShouldFail(LevelError))
	assert.False(t, d.ShouldRender(LevelError))

	v := ForVisualDebugging()
	assert.False(t, v.ShouldFail(LevelFatal))
	assert.True(t, v.ShouldRender(LevelInfo))
	assert.False(t, v.ShouldRender(LevelDebug))
}
