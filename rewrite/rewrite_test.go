package rewrite

import (
	"testing"

	"github.com/erraggy/laika/document"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRewriteBlocks_ReplaceAndRemove(t *testing.T) {
	blocks := []document.Block{
		document.Paragraph{Content: []document.Span{document.Text{Content: "keep"}}},
		document.Paragraph{Content: []document.Span{document.Text{Content: "drop"}}},
		document.Heading{Level: 1, Content: []document.Span{document.Text{Content: "replace me"}}},
	}

	rules := RuleSet{
		Blocks: []BlockRule{
			func(_ *DocumentCursor, b document.Block) BlockResult {
				if p, ok := b.(document.Paragraph); ok {
					if txt, ok := p.Content[0].(document.Text); ok && txt.Content == "drop" {
						return RemoveBlock()
					}
				}
				if _, ok := b.(document.Heading); ok {
					return ReplaceBlock(document.CodeBlock{Text: "replaced"})
				}
				return RetainBlock()
			},
		},
	}

	cursor := NewCursor("doc.md", Build())
	out := RewriteBlocks(cursor, blocks, rules)

	require.Len(t, out, 2)
	para, ok := out[0].(document.Paragraph)
	require.True(t, ok)
	assert.Equal(t, "keep", para.Content[0].(document.Text).Content)

	code, ok := out[1].(document.CodeBlock)
	require.True(t, ok)
	assert.Equal(t, "replaced", code.Text)
}

func TestRewriteBlocks_BottomUp_ChildrenRewrittenFirst(t *testing.T) {
	blocks := []document.Block{
		document.Paragraph{Content: []document.Span{document.Text{Content: "loud"}}},
	}
	rules := RuleSet{
		Spans: []SpanRule{
			func(_ *DocumentCursor, s document.Span) SpanResult {
				if txt, ok := s.(document.Text); ok {
					return ReplaceSpan(document.Text{Content: "quiet"})
				}
				return RetainSpan()
			},
		},
		Blocks: []BlockRule{
			func(_ *DocumentCursor, b document.Block) BlockResult {
				if p, ok := b.(document.Paragraph); ok {
					// By the time the block rule runs, spans are already rewritten.
					if txt, ok := p.Content[0].(document.Text); ok {
						assert.Equal(t, "quiet", txt.Content)
					}
				}
				return RetainBlock()
			},
		},
	}

	cursor := NewCursor("doc.md", Resolve())
	out := RewriteBlocks(cursor, blocks, rules)
	para := out[0].(document.Paragraph)
	assert.Equal(t, "quiet", para.Content[0].(document.Text).Content)
}

func TestPhase_AppliesTo(t *testing.T) {
	assert.True(t, Render("html").AppliesTo("html"))
	assert.False(t, Render("html").AppliesTo("epub"))
	assert.True(t, Render("").AppliesTo("epub"))
	assert.False(t, Build().AppliesTo("html"))
}

func TestDocumentCursor_DepthAndAncestors(t *testing.T) {
	cursor := NewCursor("doc.md", Build())
	blocks := []document.Block{
		document.List{Items: []document.ListItem{
			{Content: []document.Block{document.Paragraph{Content: []document.Span{document.Text{Content: "x"}}}}},
		}},
	}
	var sawDepth int
	rules := RuleSet{
		Spans: []SpanRule{
			func(c *DocumentCursor, s document.Span) SpanResult {
				sawDepth = c.Depth()
				return RetainSpan()
			},
		},
	}
	RewriteBlocks(cursor, blocks, rules)
	assert.Equal(t, 3, sawDepth) // list -> paragraph -> text
}
