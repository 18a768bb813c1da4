package glslprep

import "errors"

// Sentinel errors
var (
	// ErrParseDirective is returned when an include directive is syntactically broken
	// (missing, empty, or unterminated path literal).
	ErrParseDirective = errors.New("malformed include directive")
	// ErrInclude wraps a failure reported by the include provider.
	ErrInclude = errors.New("include failed")
	// ErrRecursiveInclude is returned when a file includes itself, directly or
	// through a chain of other includes.
	ErrRecursiveInclude = errors.New("recursive include")
	// ErrIncludeNotFound is returned by FileProvider when a path resolves to no
	// file in any search location.
	ErrIncludeNotFound = errors.New("include file not found")
)
