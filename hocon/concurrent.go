package hocon

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// ResolveIncludesConcurrently pre-fetches the raw text of every include
// resource reachable from root before resolution begins, fetching
// independent resources in parallel. This does not change resolution
// semantics (expandIncludes still walks and splices deterministically,
// single-threaded) — it only warms a cache so that network-bound url(...)
// includes do not serialize behind one another, per §5's allowance for
// host-level concurrency over independent operations.
//
// Grounded on the teacher's internal/mcpserver handlers, which fan out
// independent document loads with errgroup rather than hand-rolled
// goroutine/channel bookkeeping.
func (r *Resolver) ResolveIncludesConcurrently(ctx context.Context, root *ObjectBuilder) (*ObjectBuilder, error) {
	resources := collectIncludeResources(root, nil)
	if len(resources) == 0 {
		return root, nil
	}

	cache := newIncludeCache()
	g, gctx := errgroup.WithContext(ctx)
	for _, res := range resources {
		res := res
		g.Go(func() error {
			loader := r.loaderFor(res)
			text, err := loader.Load(gctx, res)
			if err != nil {
				if res.Required {
					return err
				}
				return nil
			}
			cache.put(res, text)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	cachingResolver := &Resolver{opts: r.withCachedLoaders(cache), ctx: ctx}
	expanded, err := cachingResolver.expandIncludes(root, 0)
	if err != nil {
		return nil, err
	}
	return expanded.(*ObjectBuilder), nil
}

// collectIncludeResources walks the builder tree gathering every include
// resource without loading or expanding anything, so they can be prefetched
// in one concurrent batch.
func collectIncludeResources(v BuilderValue, out []IncludeResource) []IncludeResource {
	switch val := v.(type) {
	case *ObjectBuilder:
		for _, f := range val.Fields {
			if inc, ok := f.Value.(*IncludeBuilder); ok {
				out = append(out, inc.Resource)
				continue
			}
			out = collectIncludeResources(f.Value, out)
		}
	case *ArrayBuilder:
		for _, e := range val.Elements {
			out = collectIncludeResources(e, out)
		}
	case *ConcatValue:
		for _, p := range val.Parts {
			out = collectIncludeResources(p.Value, out)
		}
	case *MergedValue:
		for _, m := range val.Values {
			out = collectIncludeResources(m, out)
		}
	}
	return out
}

// includeCache holds prefetched include text keyed by resource identity.
type includeCache struct {
	mu      sync.Mutex
	entries map[string]string
}

func newIncludeCache() *includeCache {
	return &includeCache{entries: make(map[string]string)}
}

func (c *includeCache) put(res IncludeResource, text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[includeCacheKey(res)] = text
}

func (c *includeCache) get(res IncludeResource) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	text, ok := c.entries[includeCacheKey(res)]
	return text, ok
}

func includeCacheKey(res IncludeResource) string {
	return res.Kind + "|" + res.Location
}

// cachedLoader serves Load calls from a prefetched includeCache, falling
// back to an underlying loader on a cache miss (e.g. an include discovered
// only after another include was expanded).
type cachedLoader struct {
	cache    *includeCache
	fallback IncludeLoader
}

func (l cachedLoader) Load(ctx context.Context, resource IncludeResource) (string, error) {
	if text, ok := l.cache.get(resource); ok {
		return text, nil
	}
	return l.fallback.Load(ctx, resource)
}

func (r *Resolver) withCachedLoaders(cache *includeCache) ResolverOptions {
	opts := r.opts
	if opts.FileLoader != nil {
		opts.FileLoader = cachedLoader{cache: cache, fallback: opts.FileLoader}
	}
	if opts.ClasspathLoader != nil {
		opts.ClasspathLoader = cachedLoader{cache: cache, fallback: opts.ClasspathLoader}
	}
	if opts.URLLoader != nil {
		opts.URLLoader = cachedLoader{cache: cache, fallback: opts.URLLoader}
	}
	if opts.AnyLoader != nil {
		opts.AnyLoader = cachedLoader{cache: cache, fallback: opts.AnyLoader}
	}
	return opts
}
