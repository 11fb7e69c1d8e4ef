package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceCursor_Invariants(t *testing.T) {
	c := NewCursor("hello world")
	assert.Equal(t, 0, c.Offset())
	assert.False(t, c.AtEnd())

	next := c.Consume(5)
	assert.Equal(t, 5, next.Offset())
	assert.GreaterOrEqual(t, next.Offset(), c.Offset())

	r, ok := c.Char(0)
	require.True(t, ok)
	assert.Equal(t, 'h', r)
}

func TestSourceCursor_Drop_Lookbehind(t *testing.T) {
	c := NewCursor("hello")
	c2 := c.Consume(5)
	behind := c2.Drop(5)
	assert.Equal(t, 0, behind.Offset())
}

func TestSourceCursor_Drop_PastStart_Panics(t *testing.T) {
	c := NewCursor("hi")
	assert.Panics(t, func() { c.Drop(1) })
}

func TestSourceCursor_Position(t *testing.T) {
	c := NewCursor("abc\ndef\nghi")
	cur := c.Consume(5) // lands on 'e' of "def" (line 2, col 2)
	pos := cur.Position()
	assert.Equal(t, 2, pos.Line)
	assert.Equal(t, 2, pos.Column)
	assert.Equal(t, "def", pos.LineContent)
}

func TestOr_Identity(t *testing.T) {
	p := Literal("foo")
	failAlways := Fail[string]("never")

	// (p | fail) behaves as p
	r1 := p.Or(failAlways)(NewCursor("foobar"))
	require.True(t, r1.IsSuccess())
	assert.Equal(t, "foo", r1.Value())

	// (fail | p) behaves as p
	r2 := failAlways.Or(p)(NewCursor("foobar"))
	require.True(t, r2.IsSuccess())
	assert.Equal(t, "foo", r2.Value())
}

func TestOr_NoBacktrackPastConsumption(t *testing.T) {
	// p consumes "fo" then fails; q should never be tried since input was consumed.
	p := FlatMap(Literal("fo"), func(string) Parser[string] { return Fail[string]("boom") })
	q := Literal("fo")
	r := p.Or(q)(NewCursor("fo"))
	assert.True(t, r.IsFailure())
}

func TestMap_Identity(t *testing.T) {
	p := Literal("x")
	mapped := Map(p, func(s string) string { return s })
	in := NewCursor("xyz")
	assert.Equal(t, p(in), mapped(in))
}

func TestSeq_KeepLeft(t *testing.T) {
	p := Literal("a")
	q := Literal("b")
	kl := KeepLeft(p, q)
	r := kl(NewCursor("ab"))
	require.True(t, r.IsSuccess())
	assert.Equal(t, "a", r.Value())
	assert.Equal(t, 2, r.Next().Offset())
}

func TestConsumeAll(t *testing.T) {
	p := ConsumeAll(Literal("abc"))
	ok := p(NewCursor("abc"))
	assert.True(t, ok.IsSuccess())

	notOk := p(NewCursor("abcd"))
	assert.True(t, notOk.IsFailure())
	assert.Contains(t, notOk.Message(), "unconsumed")
}

func TestLookBehind(t *testing.T) {
	c := NewCursor("xyz").Consume(3)
	p := LookBehind(3, Literal("xyz"))
	r := p(c)
	require.True(t, r.IsSuccess())
	assert.Equal(t, 3, r.Next().Offset(), "look_behind consumes 0 characters")
}

func TestLookBehind_InsufficientInput(t *testing.T) {
	c := NewCursor("xy").Consume(2)
	p := LookBehind(5, Literal("xy"))
	r := p(c)
	assert.True(t, r.IsFailure())
}

func TestRepMin(t *testing.T) {
	digits := AnyIn(RuneRange{'0', '9'})
	p := RepN(3, digits.Char())
	r := p(NewCursor("123abc"))
	require.True(t, r.IsSuccess())
	assert.Equal(t, []rune{'1', '2', '3'}, r.Value())

	p2 := RepMin(4, digits.Char())
	r2 := p2(NewCursor("123abc"))
	assert.True(t, r2.IsFailure())
}

func TestCharClass_MinMaxTake(t *testing.T) {
	letters := AnyIn(RuneRange{'a', 'z'})
	r := letters.Min(2)(NewCursor("abcd123"))
	require.True(t, r.IsSuccess())
	assert.Equal(t, "abcd", r.Value())

	r2 := letters.Max(2)(NewCursor("abcd123"))
	require.True(t, r2.IsSuccess())
	assert.Equal(t, "ab", r2.Value())

	r3 := letters.Take(3)(NewCursor("ab1"))
	assert.True(t, r3.IsFailure())
}

func TestDelimitedBy(t *testing.T) {
	p := DelimitedBy(",", ";").Parser()
	r := p(NewCursor("hello,world"))
	require.True(t, r.IsSuccess())
	assert.Equal(t, "hello", r.Value())
	assert.Equal(t, 6, r.Next().Offset())
}

func TestDelimitedBy_KeepDelimiter(t *testing.T) {
	p := DelimitedBy(",").KeepDelimiter().Parser()
	r := p(NewCursor("hello,world"))
	require.True(t, r.IsSuccess())
	assert.Equal(t, "hello,", r.Value())
}

func TestDelimitedBy_NonEmpty(t *testing.T) {
	p := DelimitedBy(",").NonEmpty().Parser()
	r := p(NewCursor(",world"))
	assert.True(t, r.IsFailure())
}

func TestNot(t *testing.T) {
	r := Not(Literal("a"))(NewCursor("b"))
	assert.True(t, r.IsSuccess())

	r2 := Not(Literal("a"))(NewCursor("a"))
	assert.True(t, r2.IsFailure())
}

func TestOpt(t *testing.T) {
	r := Opt(Literal("a"))(NewCursor("b"))
	require.True(t, r.IsSuccess())
	assert.False(t, r.Value().Present)

	r2 := Opt(Literal("a"))(NewCursor("a"))
	require.True(t, r2.IsSuccess())
	assert.True(t, r2.Value().Present)
}

func TestPrefixedDispatch_ScanDispatch(t *testing.T) {
	star := NewPrefixedParser("*", Map(Literal("*"), func(string) string { return "<em>" }))
	table := BuildDispatch([]PrefixedParser[string]{star})

	r := ScanDispatch(NewCursor("a*b"), table, func(s string) string { return s })
	require.True(t, r.IsSuccess())
	assert.Equal(t, []string{"a", "<em>", "b"}, r.Value())
}

func TestPrefixedDispatch_FailedMappedParserEmitsText(t *testing.T) {
	// Registered for '*' but never matches; the character should fall back
	// to literal text instead of being dropped.
	never := NewPrefixedParser("*", Fail[string]("never matches"))
	table := BuildDispatch([]PrefixedParser[string]{never})

	r := ScanDispatch(NewCursor("a*b"), table, func(s string) string { return s })
	require.True(t, r.IsSuccess())
	assert.Equal(t, []string{"a", "*", "b"}, r.Value())
}

func TestRecursionGuard(t *testing.T) {
	c := NewCursor("(((")
	depth := 0
	cur := c
	for {
		next, ok := cur.IncDepth(DefaultMaxNestLevel)
		if !ok {
			break
		}
		cur = next
		depth++
		if depth > 1000 {
			t.Fatal("recursion guard did not trigger")
		}
	}
	assert.Equal(t, DefaultMaxNestLevel, depth)
}
