package glslprep

import (
	"fmt"
	"strings"
)

// directive is a parsed include statement. It only exists while a line is
// being scanned; the path is handed to the provider and the directive line
// itself is elided from the output. system records whether the path was
// <bracketed> rather than "quoted".
type directive struct {
	path   string
	system bool
}

// parseDirective decides whether a single line is an include directive and
// extracts its path literal.
//
// A directive line is: optional leading whitespace, '#', optional whitespace,
// the word "include", then a "quoted" or <bracketed> path. Anything after the
// closing delimiter is ignored. '#' followed by any other word (#version,
// #pragma, #ifdef, ...) is ordinary text and is passed through verbatim, as
// is an include directive appearing after other code on the same line.
//
// Recognition is deliberately line-scoped: a matched line with a missing,
// empty, or unterminated path is a fatal parse error rather than text.
func parseDirective(line string) (directive, bool, error) {
	rest := strings.TrimLeft(strings.TrimRight(line, "\r\n"), " \t")
	if !strings.HasPrefix(rest, "#") {
		return directive{}, false, nil
	}

	rest = strings.TrimLeft(rest[1:], " \t")

	// Take the longest run of letters after '#'. "#includefoo" is a
	// different (unknown) directive, not a broken include.
	n := 0
	for n < len(rest) && isLetter(rest[n]) {
		n++
	}

	if rest[:n] != "include" {
		return directive{}, false, nil
	}

	rest = strings.TrimLeft(rest[n:], " \t")
	if rest == "" {
		return directive{}, false, fmt.Errorf("%w: missing path", ErrParseDirective)
	}

	var (
		closing byte
		system  bool
	)

	switch rest[0] {
	case '"':
		closing = '"'
	case '<':
		closing = '>'
		system = true
	default:
		return directive{}, false, fmt.Errorf("%w: expected quoted or bracketed path", ErrParseDirective)
	}

	end := strings.IndexByte(rest[1:], closing)
	if end < 0 {
		return directive{}, false, fmt.Errorf("%w: unterminated path", ErrParseDirective)
	}

	if end == 0 {
		return directive{}, false, fmt.Errorf("%w: empty path", ErrParseDirective)
	}

	return directive{path: rest[1 : 1+end], system: system}, true, nil
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
