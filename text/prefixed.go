package text

import "sort"

// PrefixedParser pairs a parser with the explicit set of characters it can
// possibly start matching on. This lets higher-level inline parsers build
// an O(1) dispatch table keyed by first character: at a given position,
// only parsers whose prefix set contains the current character are
// attempted, in registration order.
type PrefixedParser[T any] struct {
	Parser   Parser[T]
	Prefixes map[rune]struct{}
}

// NewPrefixedParser builds a PrefixedParser whose prefix set is exactly the
// runes in prefixes. Passing an empty prefixes disables dispatch
// optimization for this parser (it can never be selected by character).
func NewPrefixedParser[T any](prefixes string, p Parser[T]) PrefixedParser[T] {
	set := make(map[rune]struct{}, len(prefixes))
	for _, r := range prefixes {
		set[r] = struct{}{}
	}
	return PrefixedParser[T]{Parser: p, Prefixes: set}
}

// BuildDispatch merges a list of PrefixedParser values sharing a start
// character with Or, in registration order, into a single per-character
// dispatch table.
func BuildDispatch[T any](parsers []PrefixedParser[T]) map[rune]Parser[T] {
	table := make(map[rune]Parser[T])
	for _, pp := range parsers {
		for r := range pp.Prefixes {
			if existing, ok := table[r]; ok {
				table[r] = existing.Or(pp.Parser)
			} else {
				table[r] = pp.Parser
			}
		}
	}
	return table
}

// DispatchChars returns the sorted set of runes covered by a dispatch
// table, useful for building the "consume ordinary text up to any of
// these" scan boundary.
func DispatchChars[T any](table map[rune]Parser[T]) []rune {
	chars := make([]rune, 0, len(table))
	for r := range table {
		chars = append(chars, r)
	}
	sort.Slice(chars, func(i, j int) bool { return chars[i] < chars[j] })
	return chars
}

// ScanDispatch implements the inline-parsing algorithm from §4.1: it
// consumes ordinary text up to the next character present in the dispatch
// table, invokes the mapped parser there, and on failure emits that single
// character as literal text before resuming. textFrom converts a run of
// plain text into a T; the scan always succeeds (matching the parser
// core's promise that unrecognized input is never rejected, only absorbed
// as text), returning the sequence of produced values.
func ScanDispatch[T any](in SourceCursor, table map[rune]Parser[T], textFrom func(s string) T) Parsed[[]T] {
	chars := DispatchChars(table)
	var results []T
	cur := in

	for !cur.AtEnd() {
		plain, afterPlain := scanPlainText(cur, chars)
		if plain != "" {
			results = append(results, textFrom(plain))
			cur = afterPlain
		}
		if cur.AtEnd() {
			break
		}
		r, _ := cur.Char(0)
		parser, ok := table[r]
		if !ok {
			// Not actually a dispatch character (shouldn't happen given
			// scanPlainText's contract, but stay defensive): emit as text.
			results = append(results, textFrom(string(r)))
			cur = cur.Consume(1)
			continue
		}
		res := parser(cur)
		if res.IsSuccess() && res.Next().Offset() > cur.Offset() {
			results = append(results, res.Value())
			cur = res.Next()
			continue
		}
		// Mapped parser failed (or matched nothing): the dispatch character
		// is emitted as ordinary text and scanning resumes past it.
		results = append(results, textFrom(string(r)))
		cur = cur.Consume(1)
	}

	return Success(results, cur)
}

// scanPlainText consumes characters until one in stopChars is seen (or
// end of input), returning the consumed plain text and the cursor just
// before the stop character.
func scanPlainText(in SourceCursor, stopChars []rune) (string, SourceCursor) {
	cur := in
	for !cur.AtEnd() {
		r, _ := cur.Char(0)
		if containsRune(stopChars, r) {
			break
		}
		cur = cur.Consume(1)
	}
	return in.Input()[in.Offset():cur.Offset()], cur
}

func containsRune(rs []rune, r rune) bool {
	// Linear scan: dispatch tables are small (one entry per distinct first
	// character of a registered inline parser), so this beats maintaining
	// a second map alongside BuildDispatch's.
	for _, c := range rs {
		if c == r {
			return true
		}
	}
	return false
}
