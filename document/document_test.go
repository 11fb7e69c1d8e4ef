package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptions_WithHelpers(t *testing.T) {
	o := Options{}.WithID("intro").WithStyle("lead").WithAttribute("data-x", "1")
	assert.Equal(t, "intro", o.ID)
	assert.Equal(t, []string{"lead"}, o.Styles)
	assert.Equal(t, "1", o.Attributes["data-x"])
	assert.False(t, o.Empty())
	assert.True(t, Options{}.Empty())
}

func TestBlockHierarchy_TypeSwitch(t *testing.T) {
	blocks := []Block{
		Paragraph{Content: []Span{Text{Content: "hi"}}},
		Heading{Level: 1, Content: []Span{Text{Content: "Title"}}},
		CodeBlock{Language: "go", Text: "package main"},
		List{Kind: ListOrdered, Items: []ListItem{{Content: []Block{Paragraph{}}}}},
		InvalidBlock{Message: "boom", Source: "@:bad"},
	}

	var kinds []string
	for _, b := range blocks {
		switch b.(type) {
		case Paragraph:
			kinds = append(kinds, "paragraph")
		case Heading:
			kinds = append(kinds, "heading")
		case CodeBlock:
			kinds = append(kinds, "code")
		case List:
			kinds = append(kinds, "list")
		case InvalidBlock:
			kinds = append(kinds, "invalid")
		}
	}
	assert.Equal(t, []string{"paragraph", "heading", "code", "list", "invalid"}, kinds)
}

func TestDocumentTreeRoot_AddAndLookup(t *testing.T) {
	root := NewDocumentTreeRoot()
	root.AddDocument(&UnresolvedDocument{Path: "intro.md", Content: []Block{Paragraph{}}})
	root.AddStaticFile(StaticAsset{Path: "logo.png", Data: []byte{0x89, 'P', 'N', 'G'}})
	root.AddStyleSheet(StyleSheet{Path: "theme.css", Formats: []string{"html"}})

	assert.Contains(t, root.Documents, "intro.md")
	assert.Contains(t, root.StaticFiles, "logo.png")
	assert.Len(t, root.StyleSheets, 1)
}
