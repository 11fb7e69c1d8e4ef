package rewrite

import "github.com/erraggy/laika/document"

// Action is the disposition a rule returns for one node: keep it
// (possibly with unchanged children already rewritten), replace it with a
// different node, or remove it from the tree entirely.
type Action int

const (
	Retain Action = iota
	Replace
	Remove
)

// BlockResult is a BlockRule's verdict on one block.
type BlockResult struct {
	Action Action
	Block  document.Block // meaningful only when Action == Replace
}

// RetainBlock keeps the block as-is.
func RetainBlock() BlockResult { return BlockResult{Action: Retain} }

// ReplaceBlock substitutes a different block.
func ReplaceBlock(b document.Block) BlockResult { return BlockResult{Action: Replace, Block: b} }

// RemoveBlock drops the block from its parent.
func RemoveBlock() BlockResult { return BlockResult{Action: Remove} }

// SpanResult is a SpanRule's verdict on one span.
type SpanResult struct {
	Action Action
	Span   document.Span
}

func RetainSpan() SpanResult                  { return SpanResult{Action: Retain} }
func ReplaceSpan(s document.Span) SpanResult  { return SpanResult{Action: Replace, Span: s} }
func RemoveSpan() SpanResult                  { return SpanResult{Action: Remove} }

// BlockRule inspects (and may rewrite) one block, with access to a cursor
// describing its position in the tree being rewritten.
type BlockRule func(cursor *DocumentCursor, b document.Block) BlockResult

// SpanRule inspects (and may rewrite) one span.
type SpanRule func(cursor *DocumentCursor, s document.Span) SpanResult

// RuleSet is the full collection of rules active for one rewrite pass.
// Rules run in order; the first rule to return a non-Retain result wins
// for that node and the rest are skipped.
type RuleSet struct {
	Blocks []BlockRule
	Spans  []SpanRule
}
