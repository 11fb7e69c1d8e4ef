package bundle

import (
	"testing"

	"github.com/erraggy/laika/document"
	"github.com/erraggy/laika/rewrite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestMerge_HigherOriginWins(t *testing.T) {
	lib := New("lib", Library)
	lib.RenderOverrides = map[string]RenderOverride{
		"html": func(*document.DocumentTreeRoot) ([]byte, error) { return []byte("lib-html"), nil },
	}

	user := New("user", User)
	user.RenderOverrides = map[string]RenderOverride{
		"html": func(*document.DocumentTreeRoot) ([]byte, error) { return []byte("user-html"), nil },
	}

	merged := Merge([]*ExtensionBundle{lib, user})
	render, ok := merged.RenderOverrides["html"]
	require.True(t, ok)
	out, err := render(nil)
	require.NoError(t, err)
	assert.Equal(t, "user-html", string(out))
}

func TestMerge_MissingContributionInherited(t *testing.T) {
	lib := New("lib", Library)
	lib.Doctype = func(path string) bool { return true }

	user := New("user", User)

	merged := Merge([]*ExtensionBundle{lib, user})
	require.NotNil(t, merged.Doctype)
	assert.True(t, merged.Doctype("anything.md"))
}

func TestMerge_StableSortWithinSameOrigin(t *testing.T) {
	a := New("a", Parser)
	a.RewriteRules = map[rewrite.PhaseKind][]RewriteRuleFactory{
		rewrite.PhaseBuild: {func() rewrite.RuleSet { return rewrite.RuleSet{} }},
	}
	b := New("b", Parser)
	b.RewriteRules = map[rewrite.PhaseKind][]RewriteRuleFactory{
		rewrite.PhaseBuild: {func() rewrite.RuleSet { return rewrite.RuleSet{} }},
	}

	merged := Merge([]*ExtensionBundle{b, a})
	assert.Len(t, merged.RewriteRules[rewrite.PhaseBuild], 2)
}

func TestMerge_ProcessExtensionCanDisableAnother(t *testing.T) {
	lib := New("lib", Library)
	lib.Doctype = func(path string) bool { return true }

	user := New("user", User)
	user.Process = func(others []*ExtensionBundle) []*ExtensionBundle {
		out := make([]*ExtensionBundle, len(others))
		for i, o := range others {
			if o.Name == "lib" {
				disabled := *o
				disabled.Doctype = nil
				out[i] = &disabled
				continue
			}
			out[i] = o
		}
		return out
	}

	merged := Merge([]*ExtensionBundle{lib, user})
	assert.Nil(t, merged.Doctype)
}

type recordingLogger struct {
	warnings []string
}

func (l *recordingLogger) Debug(string, ...any) {}
func (l *recordingLogger) Warn(msg string, _ ...any) {
	l.warnings = append(l.warnings, msg)
}

func TestMergeWithLogger_WarnsOnProcessExtensionNoOp(t *testing.T) {
	lib := New("lib", Library)
	user := New("user", User)
	user.Process = func(others []*ExtensionBundle) []*ExtensionBundle {
		return make([]*ExtensionBundle, len(others))
	}

	logger := &recordingLogger{}
	merged := MergeWithLogger([]*ExtensionBundle{lib, user}, logger)
	require.NotNil(t, merged)
	require.Len(t, logger.warnings, 1)
	assert.Equal(t, "bundle Process hook left a peer unchanged", logger.warnings[0])
}

func TestBundleFilter_Strict_Drops(t *testing.T) {
	b := New("raw", Library)
	b.ForStrictMode = func() (*ExtensionBundle, bool) { return nil, false }

	filtered := BundleFilter{Strict: true}.Apply([]*ExtensionBundle{b})
	assert.Empty(t, filtered)
}

func TestBundleFilter_RawContentDisabled(t *testing.T) {
	safe := New("safe", Library)
	b := New("raw", Library)
	b.RawContentDisabled = func() *ExtensionBundle { return safe }

	filtered := BundleFilter{AcceptRawContent: false}.Apply([]*ExtensionBundle{b})
	require.Len(t, filtered, 1)
	assert.Same(t, safe, filtered[0])
}

func TestDefaultSlugBuilder(t *testing.T) {
	slug := DefaultSlugBuilder(language.English)
	assert.Equal(t, "hello-world", slug.Slug("  Hello, World!  "))
	assert.Equal(t, "a-b", slug.Slug("A -- B"))
}
