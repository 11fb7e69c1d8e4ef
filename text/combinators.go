package text

import "fmt"

// Pair is the result of Seq: the two values produced by sequencing two
// parsers, in order.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Option represents the result of Opt: a value that may or may not be
// present.
type Option[T any] struct {
	Present bool
	Value   T
}

// Get returns the value and whether it was present.
func (o Option[T]) Get() (T, bool) { return o.Value, o.Present }

// OrElse returns the contained value, or def if absent.
func (o Option[T]) OrElse(def T) T {
	if o.Present {
		return o.Value
	}
	return def
}

// Succeed builds a parser that always succeeds with value, consuming no
// input.
func Succeed[T any](value T) Parser[T] {
	return func(in SourceCursor) Parsed[T] { return Success(value, in) }
}

// Fail builds a parser that always fails with the given message, consuming
// no input.
func Fail[T any](message string) Parser[T] {
	return func(in SourceCursor) Parsed[T] { return FailureString[T](in, message) }
}

// Seq sequences two parsers, succeeding iff both succeed, producing a Pair.
// On failure of q, the combined failure is reported at q's offset (q runs
// against p's resulting cursor, so this happens naturally).
func Seq[A, B any](p Parser[A], q Parser[B]) Parser[Pair[A, B]] {
	return func(in SourceCursor) Parsed[Pair[A, B]] {
		pr := p(in)
		if pr.IsFailure() {
			return mapTo[A, Pair[A, B]](pr, Pair[A, B]{})
		}
		qr := q(pr.Next())
		if qr.IsFailure() {
			return mapTo[B, Pair[A, B]](qr, Pair[A, B]{})
		}
		return Success(Pair[A, B]{First: pr.Value(), Second: qr.Value()}, qr.Next())
	}
}

// KeepLeft sequences two parsers, keeping only the first value (p <~ q).
func KeepLeft[A, B any](p Parser[A], q Parser[B]) Parser[A] {
	return Map(Seq(p, q), func(pair Pair[A, B]) A { return pair.First })
}

// KeepRight sequences two parsers, keeping only the second value (p ~> q).
func KeepRight[A, B any](p Parser[A], q Parser[B]) Parser[B] {
	return Map(Seq(p, q), func(pair Pair[A, B]) B { return pair.Second })
}

// Or tries p; if p fails without consuming input beyond in's offset, tries
// q at the original cursor. A failure marked via Commit is never
// backtracked past, even without consumption.
func (p Parser[T]) Or(q Parser[T]) Parser[T] {
	return func(in SourceCursor) Parsed[T] {
		pr := p(in)
		if pr.IsSuccess() {
			return pr
		}
		if pr.committed || pr.Next().Offset() > in.Offset() {
			return pr
		}
		return q(in)
	}
}

// Or is the free-function form of the Or method, useful when composing
// parsers built elsewhere without a named local variable.
func Or[T any](p, q Parser[T]) Parser[T] { return p.Or(q) }

// Commit marks p so that, should it fail, containing Or combinators will
// not backtrack to try an alternative branch even if no input was
// consumed. Use this once a parser has committed to a particular
// interpretation of the input (e.g. after seeing a distinctive keyword).
func Commit[T any](p Parser[T]) Parser[T] {
	return func(in SourceCursor) Parsed[T] {
		r := p(in)
		if r.IsFailure() {
			return r.committedFailure()
		}
		return r
	}
}

// Map transforms a successful result with f; failures pass through
// unchanged (Map(p, id) == p).
func Map[T, U any](p Parser[T], f func(T) U) Parser[U] {
	return func(in SourceCursor) Parsed[U] {
		r := p(in)
		if r.IsFailure() {
			return mapTo[T, U](r, *new(U))
		}
		return Success(f(r.Value()), r.Next())
	}
}

// FlatMap runs p, then feeds its value to f to obtain the next parser to
// run, threading the cursor through both (p >> f).
func FlatMap[T, U any](p Parser[T], f func(T) Parser[U]) Parser[U] {
	return func(in SourceCursor) Parsed[U] {
		r := p(in)
		if r.IsFailure() {
			return mapTo[T, U](r, *new(U))
		}
		return f(r.Value())(r.Next())
	}
}

// Rep matches p zero or more times, greedily, stopping at the first failure
// that consumes no input relative to its own start (a failing p that
// consumes input is propagated as an error, matching common combinator
// libraries' "no silent partial repetition" behavior... laika instead stops
// cleanly: Rep always succeeds, returning every match collected so far).
func Rep[T any](p Parser[T]) Parser[[]T] {
	return RepMax(-1, p)
}

// RepMin matches p at least n times; greedy beyond that. Fails if fewer
// than n matches are found.
func RepMin[T any](n int, p Parser[T]) Parser[[]T] {
	return func(in SourceCursor) Parsed[[]T] {
		values := make([]T, 0, n)
		cur := in
		for {
			r := p(cur)
			if r.IsFailure() {
				break
			}
			values = append(values, r.Value())
			if r.Next().Offset() == cur.Offset() {
				// Zero-width match: stop to avoid looping forever.
				cur = r.Next()
				break
			}
			cur = r.Next()
		}
		if len(values) < n {
			return FailureString[[]T](cur, fmt.Sprintf("expected at least %d repetitions, got %d", n, len(values)))
		}
		return Success(values, cur)
	}
}

// RepMax matches p up to n times (unbounded if n < 0), always succeeding
// with whatever was collected (possibly zero matches).
func RepMax[T any](n int, p Parser[T]) Parser[[]T] {
	return func(in SourceCursor) Parsed[[]T] {
		var values []T
		cur := in
		for n < 0 || len(values) < n {
			r := p(cur)
			if r.IsFailure() {
				break
			}
			values = append(values, r.Value())
			if r.Next().Offset() == cur.Offset() {
				cur = r.Next()
				break
			}
			cur = r.Next()
		}
		return Success(values, cur)
	}
}

// RepN matches p exactly n times.
func RepN[T any](n int, p Parser[T]) Parser[[]T] {
	return func(in SourceCursor) Parsed[[]T] {
		values := make([]T, 0, n)
		cur := in
		for i := 0; i < n; i++ {
			r := p(cur)
			if r.IsFailure() {
				return mapTo[T, []T](r, nil)
			}
			values = append(values, r.Value())
			cur = r.Next()
		}
		return Success(values, cur)
	}
}

// LookAhead matches p without consuming any input: on success, the
// returned cursor is the input cursor, not p's resulting cursor.
func LookAhead[T any](p Parser[T]) Parser[T] {
	return func(in SourceCursor) Parsed[T] {
		r := p(in)
		if r.IsFailure() {
			return r
		}
		return Success(r.Value(), in)
	}
}

// LookBehind runs p against the cursor moved back k characters, consuming
// nothing in the forward direction. It fails if the cursor is within k of
// the start of input.
func LookBehind[T any](k int, p Parser[T]) Parser[T] {
	return func(in SourceCursor) Parsed[T] {
		if in.CharsBeforeAvailable() < k {
			return FailureString[T](in, fmt.Sprintf("look_behind(%d): insufficient input before cursor", k))
		}
		behind := in.Drop(k)
		r := p(behind)
		if r.IsFailure() {
			return FailureString[T](in, "look_behind failed")
		}
		return Success(r.Value(), in)
	}
}

// Not succeeds, consuming nothing, iff p fails at the given position.
func Not[T any](p Parser[T]) Parser[struct{}] {
	return func(in SourceCursor) Parsed[struct{}] {
		r := p(in)
		if r.IsSuccess() {
			return FailureString[struct{}](in, "not: unexpected match")
		}
		return Success(struct{}{}, in)
	}
}

// Opt makes p optional: it always succeeds, with Option.Present indicating
// whether p actually matched.
func Opt[T any](p Parser[T]) Parser[Option[T]] {
	return func(in SourceCursor) Parsed[Option[T]] {
		r := p(in)
		if r.IsFailure() {
			if r.Next().Offset() > in.Offset() || r.committed {
				// p committed to a partial, failing parse; propagate rather
				// than silently treating it as "absent".
				return mapTo[T, Option[T]](r, Option[T]{})
			}
			return Success(Option[T]{}, in)
		}
		return Success(Option[T]{Present: true, Value: r.Value()}, r.Next())
	}
}

// ConsumeAll requires p to consume the input to end-of-input, failing with
// "unconsumed input" otherwise.
func ConsumeAll[T any](p Parser[T]) Parser[T] {
	return func(in SourceCursor) Parsed[T] {
		r := p(in)
		if r.IsFailure() {
			return r
		}
		if !r.Next().AtEnd() {
			return FailureString[T](r.Next(), "unconsumed input")
		}
		return r
	}
}
