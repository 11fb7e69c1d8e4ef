package text

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// CharClass is a named character predicate exposing the Take/Min/Max/Char
// family of parsers over runs of matching characters, per §4.1.
type CharClass struct {
	name string
	pred func(r rune) bool
}

// NewCharClass builds a CharClass from an arbitrary predicate, named for
// diagnostics.
func NewCharClass(name string, pred func(r rune) bool) CharClass {
	return CharClass{name: name, pred: pred}
}

// AnyOf matches any single character contained in chars.
func AnyOf(chars string) CharClass {
	return CharClass{
		name: fmt.Sprintf("any of %q", chars),
		pred: func(r rune) bool { return strings.ContainsRune(chars, r) },
	}
}

// AnyBut matches any single character not contained in chars.
func AnyBut(chars string) CharClass {
	return CharClass{
		name: fmt.Sprintf("any but %q", chars),
		pred: func(r rune) bool { return !strings.ContainsRune(chars, r) },
	}
}

// RuneRange is an inclusive [Lo, Hi] range of runes.
type RuneRange struct{ Lo, Hi rune }

// AnyIn matches any single character falling within one of the given
// inclusive ranges.
func AnyIn(ranges ...RuneRange) CharClass {
	return CharClass{
		name: "any in range",
		pred: func(r rune) bool {
			for _, rg := range ranges {
				if r >= rg.Lo && r <= rg.Hi {
					return true
				}
			}
			return false
		},
	}
}

// AnyWhile matches any single character satisfying an arbitrary predicate.
func AnyWhile(pred func(r rune) bool) CharClass {
	return CharClass{name: "any matching predicate", pred: pred}
}

// Char matches exactly one character from the class.
func (c CharClass) Char() Parser[rune] {
	return func(in SourceCursor) Parsed[rune] {
		r, ok := in.Char(0)
		if !ok || !c.pred(r) {
			return FailureString[rune](in, "expected "+c.name)
		}
		return Success(r, in.Consume(1))
	}
}

// Take matches exactly n characters, all from the class.
func (c CharClass) Take(n int) Parser[string] {
	return func(in SourceCursor) Parsed[string] {
		cur := in
		for i := 0; i < n; i++ {
			r, ok := cur.Char(0)
			if !ok || !c.pred(r) {
				return FailureString[string](cur, fmt.Sprintf("expected %d characters matching %s", n, c.name))
			}
			cur = cur.Consume(1)
		}
		return Success(in.Input()[in.Offset():cur.Offset()], cur)
	}
}

// Min matches greedily, succeeding iff at least n characters from the class
// were consumed.
func (c CharClass) Min(n int) Parser[string] {
	return func(in SourceCursor) Parsed[string] {
		cur := in
		count := 0
		for {
			r, ok := cur.Char(0)
			if !ok || !c.pred(r) {
				break
			}
			cur = cur.Consume(1)
			count++
		}
		if count < n {
			return FailureString[string](cur, fmt.Sprintf("expected at least %d characters matching %s, got %d", n, c.name, count))
		}
		return Success(in.Input()[in.Offset():cur.Offset()], cur)
	}
}

// Max matches greedily, up to n characters (unbounded if n < 0), always
// succeeding even with zero matches.
func (c CharClass) Max(n int) Parser[string] {
	return func(in SourceCursor) Parsed[string] {
		cur := in
		count := 0
		for n < 0 || count < n {
			r, ok := cur.Char(0)
			if !ok || !c.pred(r) {
				break
			}
			cur = cur.Consume(1)
			count++
		}
		return Success(in.Input()[in.Offset():cur.Offset()], cur)
	}
}

// DelimiterScanner finds the earliest occurrence of any of a set of
// delimiters and returns everything before it.
type DelimiterScanner struct {
	delims        []string
	keepDelimiter bool
	nonEmpty      bool
	failOn        string
}

// DelimitedBy creates a scanner that looks for the earliest of the given
// delimiters.
func DelimitedBy(delims ...string) *DelimiterScanner {
	return &DelimiterScanner{delims: delims}
}

// KeepDelimiter configures the scanner to include the matched delimiter in
// the returned text rather than stopping just before it.
func (d *DelimiterScanner) KeepDelimiter() *DelimiterScanner {
	d.keepDelimiter = true
	return d
}

// NonEmpty requires at least one character before the delimiter.
func (d *DelimiterScanner) NonEmpty() *DelimiterScanner {
	d.nonEmpty = true
	return d
}

// FailOn causes the scan to fail outright if any of the given characters is
// encountered before a delimiter (useful for rejecting, e.g., a bare
// newline inside a single-line construct).
func (d *DelimiterScanner) FailOn(chars string) *DelimiterScanner {
	d.failOn = chars
	return d
}

// Parser builds the text.Parser[string] for this scanner configuration.
func (d *DelimiterScanner) Parser() Parser[string] {
	return func(in SourceCursor) Parsed[string] {
		rest := in.Remaining()
		bestIdx := -1
		bestLen := 0
		for _, delim := range d.delims {
			if idx := strings.Index(rest, delim); idx >= 0 && (bestIdx < 0 || idx < bestIdx) {
				bestIdx = idx
				bestLen = len(delim)
			}
		}
		if bestIdx < 0 {
			return FailureString[string](in, "no delimiter found")
		}
		if d.failOn != "" {
			if idx := strings.IndexAny(rest[:bestIdx], d.failOn); idx >= 0 {
				return FailureString[string](in.ConsumeBytes(idx), "unexpected character before delimiter")
			}
		}
		if d.nonEmpty && bestIdx == 0 {
			return FailureString[string](in, "expected non-empty text before delimiter")
		}
		end := bestIdx
		if d.keepDelimiter {
			end += bestLen
			return Success(rest[:end], in.ConsumeBytes(end))
		}
		return Success(rest[:bestIdx], in.ConsumeBytes(bestIdx+bestLen))
	}
}

// Literal matches an exact string.
func Literal(s string) Parser[string] {
	return func(in SourceCursor) Parsed[string] {
		if strings.HasPrefix(in.Remaining(), s) {
			return Success(s, in.ConsumeBytes(len(s)))
		}
		return FailureString[string](in, fmt.Sprintf("expected %q", s))
	}
}

// EOL matches and consumes a line ending ("\r\n" or "\n").
var EOL Parser[string] = func(in SourceCursor) Parsed[string] {
	rest := in.Remaining()
	if strings.HasPrefix(rest, "\r\n") {
		return Success("\r\n", in.ConsumeBytes(2))
	}
	if strings.HasPrefix(rest, "\n") {
		return Success("\n", in.ConsumeBytes(1))
	}
	return FailureString[string](in, "expected end of line")
}

// AtEOF succeeds, consuming nothing, iff the cursor is at the end of input.
var AtEOF Parser[struct{}] = func(in SourceCursor) Parsed[struct{}] {
	if in.AtEnd() {
		return Success(struct{}{}, in)
	}
	return FailureString[struct{}](in, "expected end of input")
}

// AtSOI succeeds, consuming nothing, iff the cursor is at the very start of
// input (offset zero).
var AtSOI Parser[struct{}] = func(in SourceCursor) Parsed[struct{}] {
	if in.Offset() == 0 {
		return Success(struct{}{}, in)
	}
	return FailureString[struct{}](in, "expected start of input")
}

// RuneLen returns the UTF-8 byte length of r, useful when composing custom
// scanners alongside the primitives above.
func RuneLen(r rune) int { return utf8.RuneLen(r) }
