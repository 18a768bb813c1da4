package glslprep

// SourceChunk is a contiguous run of expanded shader source that came from a
// single file, along with enough information to point compiler errors back at
// the original code.
//
// Concatenating the Source fields of the chunks returned by Process or
// ProcessFile, in order, reproduces the fully expanded shader with each
// include directive line replaced by the included file's expansion.
type SourceChunk struct {
	// Source text
	Source string

	// File the code came from (the include path as the provider saw it, or
	// the logical name given to Process)
	File string

	// Line in File at which this chunk starts (1-based)
	StartLine int
}

// OriginLine maps a 1-based line number within the chunk to the corresponding
// line number in File.
func (c SourceChunk) OriginLine(rel int) int {
	return c.StartLine + rel - 1
}
