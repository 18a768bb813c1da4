package glslprep

// DepTracker wraps a provider and records every successfully resolved include
// path in first-visit order, so build systems can derive a file manifest from
// a crawl. It changes nothing about crawl semantics.
type DepTracker[C any] struct {
	provider IncludeProvider[C]
	seen     map[string]struct{}
	deps     []string
}

// NewDepTracker wraps provider with dependency recording.
func NewDepTracker[C any](provider IncludeProvider[C]) *DepTracker[C] {
	return &DepTracker[C]{
		provider: provider,
		seen:     make(map[string]struct{}),
	}
}

// GetInclude implements IncludeProvider.
func (t *DepTracker[C]) GetInclude(path string, ctx C) (string, C, error) {
	source, next, err := t.provider.GetInclude(path, ctx)

	return t.record(path, source, next, err)
}

// GetSystemInclude implements SystemIncludeProvider so wrapping a provider
// does not hide its system-include capability. If the wrapped provider lacks
// the capability, bracketed includes fall back to GetInclude, matching what
// the crawler would do with the unwrapped provider.
func (t *DepTracker[C]) GetSystemInclude(path string, ctx C) (string, C, error) {
	var (
		source string
		next   C
		err    error
	)

	if sp, ok := t.provider.(SystemIncludeProvider[C]); ok {
		source, next, err = sp.GetSystemInclude(path, ctx)
	} else {
		source, next, err = t.provider.GetInclude(path, ctx)
	}

	return t.record(path, source, next, err)
}

func (t *DepTracker[C]) record(path, source string, next C, err error) (string, C, error) {
	if err != nil {
		return source, next, err
	}

	if _, ok := t.seen[path]; !ok {
		t.seen[path] = struct{}{}
		t.deps = append(t.deps, path)
	}

	return source, next, nil
}

// Deps returns the recorded paths in first-visit order. The slice is owned by
// the tracker; callers should copy it if they keep it across crawls.
func (t *DepTracker[C]) Deps() []string {
	return t.deps
}
