package rewrite

import "github.com/erraggy/laika/document"

// RewriteBlocks applies rules to every block in blocks and their
// descendants, depth-first and bottom-up: a block's children (and their
// spans) are fully rewritten before the block itself is offered to
// rules.Blocks, so a rule inspecting a block already sees its final
// content.
func RewriteBlocks(cursor *DocumentCursor, blocks []document.Block, rules RuleSet) []document.Block {
	out := make([]document.Block, 0, len(blocks))
	for _, b := range blocks {
		rewritten, action := rewriteBlock(cursor, b, rules)
		switch action {
		case Remove:
			continue
		default:
			out = append(out, rewritten)
		}
	}
	return out
}

func rewriteBlock(cursor *DocumentCursor, b document.Block, rules RuleSet) (document.Block, Action) {
	child := cursor.descend(blockLabel(b))
	b = rewriteBlockChildren(child, b, rules)

	for _, rule := range rules.Blocks {
		result := rule(child, b)
		switch result.Action {
		case Replace:
			return result.Block, Replace
		case Remove:
			return nil, Remove
		}
	}
	return b, Retain
}

// rewriteBlockChildren rewrites the nested blocks/spans a block carries,
// without yet applying block-level rules to the block itself.
func rewriteBlockChildren(cursor *DocumentCursor, b document.Block, rules RuleSet) document.Block {
	switch v := b.(type) {
	case document.Paragraph:
		v.Content = RewriteSpans(cursor, v.Content, rules)
		return v
	case document.Heading:
		v.Content = RewriteSpans(cursor, v.Content, rules)
		return v
	case document.List:
		items := make([]document.ListItem, len(v.Items))
		for i, item := range v.Items {
			items[i] = document.ListItem{Content: RewriteBlocks(cursor, item.Content, rules)}
		}
		v.Items = items
		return v
	case document.BlockSequence:
		v.Content = RewriteBlocks(cursor, v.Content, rules)
		return v
	default:
		return b
	}
}

// RewriteSpans applies rules to every span in spans, bottom-up (a span's
// nested spans are rewritten before the span itself).
func RewriteSpans(cursor *DocumentCursor, spans []document.Span, rules RuleSet) []document.Span {
	out := make([]document.Span, 0, len(spans))
	for _, s := range spans {
		rewritten, action := rewriteSpan(cursor, s, rules)
		if action == Remove {
			continue
		}
		out = append(out, rewritten)
	}
	return out
}

func rewriteSpan(cursor *DocumentCursor, s document.Span, rules RuleSet) (document.Span, Action) {
	child := cursor.descend(spanLabel(s))
	s = rewriteSpanChildren(child, s, rules)

	for _, rule := range rules.Spans {
		result := rule(child, s)
		switch result.Action {
		case Replace:
			return result.Span, Replace
		case Remove:
			return nil, Remove
		}
	}
	return s, Retain
}

func rewriteSpanChildren(cursor *DocumentCursor, s document.Span, rules RuleSet) document.Span {
	switch v := s.(type) {
	case document.Emphasized:
		v.Content = RewriteSpans(cursor, v.Content, rules)
		return v
	case document.Strong:
		v.Content = RewriteSpans(cursor, v.Content, rules)
		return v
	case document.SpanLink:
		v.Content = RewriteSpans(cursor, v.Content, rules)
		return v
	default:
		return s
	}
}

func blockLabel(b document.Block) string {
	switch b.(type) {
	case document.Paragraph:
		return "paragraph"
	case document.Heading:
		return "heading"
	case document.CodeBlock:
		return "code_block"
	case document.List:
		return "list"
	case document.BlockSequence:
		return "block_sequence"
	case document.InvalidBlock:
		return "invalid_block"
	default:
		return "block"
	}
}

func spanLabel(s document.Span) string {
	switch s.(type) {
	case document.Text:
		return "text"
	case document.Emphasized:
		return "emphasized"
	case document.Strong:
		return "strong"
	case document.Literal:
		return "literal"
	case document.SpanLink:
		return "link"
	case document.InvalidSpan:
		return "invalid_span"
	default:
		return "span"
	}
}
