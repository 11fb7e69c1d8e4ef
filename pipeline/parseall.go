package pipeline

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Input names one ParseWithOptions call for ParseAll: Name is carried
// through to identify its slot in the returned results, independent of
// whatever source name the options themselves set.
type Input struct {
	Name    string
	Options []Option
}

// Result pairs one Input's outcome with its Name.
type Result struct {
	Name   string
	Result *ParseResult
	Err    error
}

// ParseAll runs every input's pipeline independently and concurrently,
// per §5's concurrency model: each operation consumes immutable input
// and produces an immutable tree with no shared mutable state, so
// inputs may be thread-pooled without coordination. A context
// cancellation stops launching new inputs but does not abort ones
// already running (ParseWithOptions has no internal cancellation
// points, per §5).
func ParseAll(ctx context.Context, inputs []Input) []Result {
	results := make([]Result, len(inputs))
	g, gctx := errgroup.WithContext(ctx)
	for i, in := range inputs {
		i, in := i, in
		g.Go(func() error {
			if gctx.Err() != nil {
				results[i] = Result{Name: in.Name, Err: gctx.Err()}
				return nil
			}
			res, err := ParseWithOptions(in.Options...)
			results[i] = Result{Name: in.Name, Result: res, Err: err}
			return nil
		})
	}
	_ = g.Wait()
	return results
}
