// Package text is laika's parser combinator core: an allocation-conscious,
// generic combinator library over an immutable SourceCursor, with lazy
// failure messages and a prefix-dispatch mechanism for inline parsing.
//
// Grounded on the teacher's low-level scanning style (github.com/erraggy/
// oastools parser.SourceMap / parser.SourceLocation for positional
// tracking) generalized from a fixed OAS document shape into a reusable
// combinator core.
package text

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/erraggy/laika/laikaerrors"
)

// DefaultMaxNestLevel is the recommended recursion guard for block parsers,
// per-markup-format. Beyond this nesting depth a non-recursive fallback
// parser should be used instead.
const DefaultMaxNestLevel = 12

// lineIndex caches line-start byte offsets for O(log n) line/column lookup.
// It is computed once per input string and shared by every SourceCursor
// derived from that input.
type lineIndex struct {
	input      string
	lineStarts []int // byte offset of the first character of each line
}

func newLineIndex(input string) *lineIndex {
	starts := make([]int, 1, 16)
	starts[0] = 0
	for i, r := range input {
		if r == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &lineIndex{input: input, lineStarts: starts}
}

// lineAt returns the 0-based line index containing the given byte offset.
func (li *lineIndex) lineAt(offset int) int {
	// sort.Search finds the first lineStart > offset; the line containing
	// offset is the one just before it.
	i := sort.Search(len(li.lineStarts), func(i int) bool {
		return li.lineStarts[i] > offset
	})
	return i - 1
}

// lineContent returns the text of the given 0-based line, excluding the
// trailing newline.
func (li *lineIndex) lineContent(line int) string {
	if line < 0 || line >= len(li.lineStarts) {
		return ""
	}
	start := li.lineStarts[line]
	end := len(li.input)
	if line+1 < len(li.lineStarts) {
		end = li.lineStarts[line+1] - 1 // exclude '\n'
	}
	if end > len(li.input) {
		end = len(li.input)
	}
	if start > end {
		return ""
	}
	content := li.input[start:end]
	return strings.TrimSuffix(content, "\r")
}

// SourceCursor is an immutable view over input text: an offset and a
// current nesting depth. Invariant: 0 <= Offset() <= len(Input()).
// Advancing a cursor yields a new value; cursors never mutate in place.
type SourceCursor struct {
	input string
	index *lineIndex
	offset int
	depth  int
}

// NewCursor creates a SourceCursor positioned at the start of input.
func NewCursor(input string) SourceCursor {
	return SourceCursor{input: input, index: newLineIndex(input), offset: 0, depth: 0}
}

// Input returns the full input text this cursor is a view over.
func (c SourceCursor) Input() string { return c.input }

// Offset returns the current byte offset into Input().
func (c SourceCursor) Offset() int { return c.offset }

// Depth returns the current nesting depth, incremented by block parsers on
// each recursive level via IncDepth.
func (c SourceCursor) Depth() int { return c.depth }

// Remaining returns the unconsumed suffix of the input.
func (c SourceCursor) Remaining() string { return c.input[c.offset:] }

// AtEnd reports whether the cursor has reached the end of input.
func (c SourceCursor) AtEnd() bool { return c.offset >= len(c.input) }

// Char returns the rune k positions ahead of the cursor (k=0 is the current
// character) and whether it exists.
func (c SourceCursor) Char(k int) (rune, bool) {
	rest := c.input[c.offset:]
	for i := 0; i < k; i++ {
		if len(rest) == 0 {
			return 0, false
		}
		_, size := utf8.DecodeRuneInString(rest)
		rest = rest[size:]
	}
	if len(rest) == 0 {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(rest)
	return r, true
}

// Capture returns up to n characters starting at the cursor, without
// advancing it. It may return fewer than n characters if input runs out.
func (c SourceCursor) Capture(n int) string {
	rest := c.input[c.offset:]
	count := 0
	for i := range rest {
		if count == n {
			return rest[:i]
		}
		count++
	}
	return rest
}

// Consume advances the cursor by n characters (runes), returning the new
// cursor. Consuming past the end of input clamps to len(Input()).
func (c SourceCursor) Consume(n int) SourceCursor {
	rest := c.input[c.offset:]
	consumed := 0
	for i := range rest {
		if consumed == n {
			c.offset += i
			return c
		}
		consumed++
	}
	c.offset = len(c.input)
	return c
}

// ConsumeBytes advances the cursor by exactly n bytes. Used internally by
// primitives that already know the byte length of a match (e.g. delimiter
// scanning); callers working with characters should use Consume instead.
func (c SourceCursor) ConsumeBytes(n int) SourceCursor {
	c.offset += n
	if c.offset > len(c.input) {
		c.offset = len(c.input)
	}
	return c
}

// Drop moves the cursor backward by k characters, for lookbehind. It is an
// error (panics) to call Drop with k greater than the number of characters
// available before the cursor; LookBehind checks this first.
func (c SourceCursor) Drop(k int) SourceCursor {
	prefix := c.input[:c.offset]
	runes := []rune(prefix)
	if k > len(runes) {
		panic("text: Drop beyond start of input")
	}
	kept := runes[:len(runes)-k]
	c.offset = len(string(kept))
	return c
}

// CharsBeforeAvailable returns how many characters precede the cursor,
// i.e. the maximum k for which Drop(k) is valid.
func (c SourceCursor) CharsBeforeAvailable() int {
	return len([]rune(c.input[:c.offset]))
}

// IncDepth returns a cursor with its nesting depth incremented by one, and
// whether doing so would exceed maxNest. Block parsers call this on each
// recursive level and fall back to a non-recursive parser when ok is false.
func (c SourceCursor) IncDepth(maxNest int) (next SourceCursor, ok bool) {
	if c.depth+1 > maxNest {
		return c, false
	}
	c.depth++
	return c, true
}

// Position computes the (line, column, line-content) diagnostic position of
// the cursor, suitable for embedding in a laikaerrors.ParserFailure.
func (c SourceCursor) Position() laikaerrors.Position {
	line := c.index.lineAt(c.offset)
	lineStart := c.index.lineStarts[line]
	col := len([]rune(c.input[lineStart:c.offset])) + 1
	return laikaerrors.Position{
		Line:        line + 1,
		Column:      col,
		LineContent: c.index.lineContent(line),
	}
}
