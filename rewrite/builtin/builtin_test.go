package builtin

import (
	"context"
	"errors"
	"testing"

	"github.com/erraggy/laika/config"
	"github.com/erraggy/laika/document"
	"github.com/erraggy/laika/hocon"
	"github.com/erraggy/laika/rewrite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	obj, errs := hocon.ParseDocument("test", `name = "laika"`)
	require.Empty(t, errs)
	resolved, err := hocon.NewResolver(context.Background(), hocon.ResolverOptions{}).Resolve(obj)
	require.NoError(t, err)
	return config.FromResolved(resolved, hocon.Origin{Description: "test"})
}

func TestBuildRuleSet_ResolveVariables(t *testing.T) {
	cfg := testConfig(t)
	rules := BuildRuleSet(Options{
		Enabled: map[RuleName]bool{ResolveVariables: true},
		Config:  cfg,
	})

	blocks := []document.Block{
		document.Paragraph{Content: []document.Span{document.TemplateVariable{Path: "name"}}},
	}
	out := rewrite.RewriteBlocks(rewrite.NewCursor("t.md", rewrite.Resolve()), blocks, rules)
	para := out[0].(document.Paragraph)
	txt, ok := para.Content[0].(document.Text)
	require.True(t, ok)
	assert.Equal(t, "laika", txt.Content)
}

func TestBuildRuleSet_ResolveVariables_Missing(t *testing.T) {
	cfg := testConfig(t)
	rules := BuildRuleSet(Options{
		Enabled: map[RuleName]bool{ResolveVariables: true},
		Config:  cfg,
	})
	blocks := []document.Block{
		document.Paragraph{Content: []document.Span{document.TemplateVariable{Path: "missing"}}},
	}
	out := rewrite.RewriteBlocks(rewrite.NewCursor("t.md", rewrite.Resolve()), blocks, rules)
	para := out[0].(document.Paragraph)
	_, ok := para.Content[0].(document.InvalidSpan)
	assert.True(t, ok)
}

func TestBuildRuleSet_ResolveDirectives(t *testing.T) {
	rules := BuildRuleSet(Options{
		Enabled: map[RuleName]bool{ResolveDirectives: true},
		Directives: func(name string, args map[string]string) (document.Span, error) {
			if name == "bad" {
				return nil, errors.New("boom")
			}
			return document.Text{Content: "rendered:" + name}, nil
		},
	})
	blocks := []document.Block{
		document.Paragraph{Content: []document.Span{document.TemplateDirectiveCall{Name: "greet"}}},
	}
	out := rewrite.RewriteBlocks(rewrite.NewCursor("t.md", rewrite.Resolve()), blocks, rules)
	txt := out[0].(document.Paragraph).Content[0].(document.Text)
	assert.Equal(t, "rendered:greet", txt.Content)
}

func TestBuildRuleSet_AssignHeadingIDs_Dedupes(t *testing.T) {
	rules := BuildRuleSet(Options{Enabled: map[RuleName]bool{AssignHeadingIDs: true}})
	blocks := []document.Block{
		document.Heading{Level: 1, Content: []document.Span{document.Text{Content: "Intro"}}},
		document.Heading{Level: 2, Content: []document.Span{document.Text{Content: "Intro"}}},
	}
	out := rewrite.RewriteBlocks(rewrite.NewCursor("t.md", rewrite.Build()), blocks, rules)
	h1 := out[0].(document.Heading)
	h2 := out[1].(document.Heading)
	assert.Equal(t, "intro", h1.Opts.ID)
	assert.Equal(t, "intro-1", h2.Opts.ID)
}

func TestBuildRuleSet_PruneEmptyParagraphs(t *testing.T) {
	rules := BuildRuleSet(Options{Enabled: map[RuleName]bool{PruneEmptyParagraphs: true}})
	blocks := []document.Block{
		document.Paragraph{Content: nil},
		document.Paragraph{Content: []document.Span{document.Text{Content: "kept"}}},
	}
	out := rewrite.RewriteBlocks(rewrite.NewCursor("t.md", rewrite.Build()), blocks, rules)
	require.Len(t, out, 1)
}

func TestBuildRuleSet_DisabledRulesNoOp(t *testing.T) {
	rules := BuildRuleSet(Options{})
	blocks := []document.Block{document.Paragraph{Content: nil}}
	out := rewrite.RewriteBlocks(rewrite.NewCursor("t.md", rewrite.Build()), blocks, rules)
	require.Len(t, out, 1)
}
