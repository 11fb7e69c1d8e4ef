package mcpserver

import (
	"fmt"
	"strings"

	"github.com/erraggy/laika/document"
)

// dumpBlocks renders an indented, human-readable tree of blocks and
// their spans, used both by dump_ast and as render_document's fallback
// when no bundle supplies a renderer.
func dumpBlocks(blocks []document.Block, indent int) string {
	var sb strings.Builder
	for _, b := range blocks {
		writeIndent(&sb, indent)
		sb.WriteString(blockTag(b))
		sb.WriteString("\n")
		switch v := b.(type) {
		case document.Paragraph:
			sb.WriteString(dumpSpans(v.Content, indent+1))
		case document.Heading:
			sb.WriteString(dumpSpans(v.Content, indent+1))
		case document.List:
			for _, item := range v.Items {
				sb.WriteString(dumpBlocks(item.Content, indent+1))
			}
		case document.BlockSequence:
			sb.WriteString(dumpBlocks(v.Content, indent+1))
		}
	}
	return sb.String()
}

func dumpSpans(spans []document.Span, indent int) string {
	var sb strings.Builder
	for _, s := range spans {
		writeIndent(&sb, indent)
		sb.WriteString(spanTag(s))
		sb.WriteString("\n")
	}
	return sb.String()
}

func writeIndent(sb *strings.Builder, indent int) {
	for i := 0; i < indent; i++ {
		sb.WriteString("  ")
	}
}

// blockTag renders the generated tag plus any detail worth surfacing in
// a debug dump (a heading level, a code block's language, ...).
func blockTag(b document.Block) string {
	tag := document.BlockTag(b)
	switch v := b.(type) {
	case document.Heading:
		return fmt.Sprintf("%s(level=%d)", tag, v.Level)
	case document.CodeBlock:
		return fmt.Sprintf("%s(lang=%q)", tag, v.Language)
	case document.InvalidBlock:
		return fmt.Sprintf("%s(%q)", tag, v.Message)
	default:
		return tag
	}
}

func spanTag(s document.Span) string {
	tag := document.SpanTag(s)
	switch v := s.(type) {
	case document.Text:
		return fmt.Sprintf("%s(%q)", tag, v.Content)
	case document.Literal:
		return fmt.Sprintf("%s(%q)", tag, v.Content)
	case document.SpanLink:
		return fmt.Sprintf("%s(target=%q)", tag, v.Target)
	case document.InvalidSpan:
		return fmt.Sprintf("%s(%q)", tag, v.Message)
	case document.TemplateVariable:
		return fmt.Sprintf("%s(%q)", tag, v.Path)
	case document.TemplateDirectiveCall:
		return fmt.Sprintf("%s(%q)", tag, v.Name)
	default:
		return tag
	}
}
