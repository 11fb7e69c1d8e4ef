package mcpserver

import (
	"context"
	"testing"

	"github.com/erraggy/laika/document"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleParseMarkup(t *testing.T) {
	result, output, err := handleParseMarkup(context.Background(), nil, parseMarkupInput{Source: "hello world"})
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.Equal(t, 1, output.BlockCount)
	assert.Empty(t, output.InvalidElements)
}

func TestHandleResolveConfig(t *testing.T) {
	result, output, err := handleResolveConfig(context.Background(), nil, resolveConfigInput{Source: `title = "My Doc"`})
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.Contains(t, output.JSON, "My Doc")
}

func TestHandleResolveConfig_InvalidSource(t *testing.T) {
	result, _, err := handleResolveConfig(context.Background(), nil, resolveConfigInput{Source: `title = `})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestHandleRenderDocument_FallsBackToASTDump(t *testing.T) {
	result, output, err := handleRenderDocument(context.Background(), nil, renderDocumentInput{Source: "hello world", Format: "html"})
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.True(t, output.FellBackToASTDump)
	assert.Contains(t, output.Rendered, "CodeBlock")
}

func TestHandleDumpAST(t *testing.T) {
	result, output, err := handleDumpAST(context.Background(), nil, dumpASTInput{Source: "hello world"})
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.NotEmpty(t, output.Tree)
}

func TestCollectInvalid_Recurses(t *testing.T) {
	blocks := []document.Block{
		document.BlockSequence{Content: []document.Block{
			document.InvalidBlock{Message: "bad directive"},
		}},
		document.List{Items: []document.ListItem{
			{Content: []document.Block{document.InvalidBlock{Message: "bad item"}}},
		}},
	}
	var out []string
	collectInvalid(blocks, &out)
	assert.ElementsMatch(t, []string{"bad directive", "bad item"}, out)
}

func TestDumpBlocks(t *testing.T) {
	blocks := []document.Block{
		document.Heading{Level: 1, Content: []document.Span{document.Text{Content: "Title"}}},
		document.Paragraph{Content: []document.Span{document.Strong{}}},
	}
	tree := dumpBlocks(blocks, 0)
	assert.Contains(t, tree, "Heading(level=1)")
	assert.Contains(t, tree, `Text("Title")`)
	assert.Contains(t, tree, "Strong")
}

func TestSanitizeError_StripsPaths(t *testing.T) {
	err := assert.AnError
	msg := sanitizeError(err)
	assert.NotEmpty(t, msg)
}
