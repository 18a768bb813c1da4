package glslprep

import (
	"fmt"
	"strings"
)

// ProcessFile resolves path through the provider and then crawls the result,
// recursively expanding every #include directive it encounters. The returned
// chunks are in document order: concatenating their Source fields yields the
// fully expanded shader.
//
// Each crawl is an independent, stateless recursive descent; the provider is
// invoked exactly once per include directive. All errors abort the whole
// call; there is no partial output.
func ProcessFile[C any](path string, provider IncludeProvider[C], ctx C) ([]SourceChunk, error) {
	s := &scanner[C]{
		provider: provider,
		active:   make(map[string]struct{}),
	}

	if err := s.include(directive{path: path}, "", 0, ctx); err != nil {
		return nil, err
	}

	return s.chunks, nil
}

// Process is the content-supplied variant of ProcessFile, for callers that
// already own the root source. name is the logical origin reported in chunks
// produced from source itself; it is never given to the provider.
func Process[C any](source, name string, provider IncludeProvider[C], ctx C) ([]SourceChunk, error) {
	s := &scanner[C]{
		provider: provider,
		active:   make(map[string]struct{}),
	}

	if err := s.crawl(source, name, ctx); err != nil {
		return nil, err
	}

	return s.chunks, nil
}

// scanner accumulates chunks across one recursive crawl. active holds the
// include paths currently on the descent chain, so a file that re-includes
// itself is reported instead of recursing until the stack runs out.
type scanner[C any] struct {
	provider IncludeProvider[C]
	active   map[string]struct{}
	chunks   []SourceChunk
}

// crawl scans one file's content line by line, appending its chunks in order.
// Lines that are not include directives accumulate into a pending fragment;
// a directive flushes the fragment, splices in the included file's expansion,
// and the fragment resumes on the following line.
func (s *scanner[C]) crawl(source, origin string, ctx C) error {
	var pending strings.Builder

	pendingStart := 1

	flush := func(next int) {
		if pending.Len() > 0 {
			s.chunks = append(s.chunks, SourceChunk{
				Source:    pending.String(),
				File:      origin,
				StartLine: pendingStart,
			})
			pending.Reset()
		}

		pendingStart = next
	}

	for i, line := range splitLines(source) {
		lineNo := i + 1

		dir, ok, err := parseDirective(line)
		if err != nil {
			return fmt.Errorf("%s:%d: %w", origin, lineNo, err)
		}

		if !ok {
			pending.WriteString(line)
			continue
		}

		flush(lineNo + 1)

		if err := s.include(dir, origin, lineNo, ctx); err != nil {
			return err
		}
	}

	flush(0)

	return nil
}

// include fetches a directive's path through the provider and crawls the
// returned content with the returned context. from and line identify the
// directive for error annotation; ProcessFile passes an empty from for the
// root fetch.
func (s *scanner[C]) include(dir directive, from string, line int, ctx C) error {
	if _, ok := s.active[dir.path]; ok {
		return fmt.Errorf("%s:%d: %w: %q", from, line, ErrRecursiveInclude, dir.path)
	}

	source, childCtx, err := s.fetch(dir, ctx)
	if err != nil {
		if from == "" {
			return fmt.Errorf("%w %q: %w", ErrInclude, dir.path, err)
		}

		return fmt.Errorf("%s:%d: %w %q: %w", from, line, ErrInclude, dir.path, err)
	}

	s.active[dir.path] = struct{}{}
	err = s.crawl(source, dir.path, childCtx)
	delete(s.active, dir.path)

	return err
}

// fetch dispatches to the system-include capability for <bracketed> paths
// when the provider offers it.
func (s *scanner[C]) fetch(dir directive, ctx C) (string, C, error) {
	if dir.system {
		if sp, ok := s.provider.(SystemIncludeProvider[C]); ok {
			return sp.GetSystemInclude(dir.path, ctx)
		}
	}

	return s.provider.GetInclude(dir.path, ctx)
}

// splitLines splits source into lines with their terminators preserved, so
// that chunk concatenation is byte-exact. The final line may lack a newline.
func splitLines(source string) []string {
	lines := strings.SplitAfter(source, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	return lines
}
