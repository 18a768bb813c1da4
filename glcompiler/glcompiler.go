// Package glcompiler adapts crawled source chunks to the OpenGL shader
// compilation model and maps the compiler's error log back to the original
// files.
//
// OpenGL has no include files, so its error logs reference source string
// indices rather than file names, and the log format is vendor-specific.
// Compile decorates every chunk after the first with a #line pragma carrying
// its string index, hands the strings to a caller-supplied compile callback,
// and then rewrites known vendor error locations in the returned log into
// "file(line)" form using the chunks' provenance.
package glcompiler

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/glsltools/glslprep"
)

// Output is the caller-defined result of the compile callback: whatever
// artifact the graphics API produced (e.g. a shader handle), plus its info
// log. An empty log is passed through untouched.
type Output[A any] struct {
	Artifact A
	Log      string
}

// Decorate renders chunks into the source strings to submit to the compiler.
// Chunks after the first are prefixed with "#line 0 <index+1>" so that error
// logs referencing string indices can be remapped.
func Decorate(chunks []glslprep.SourceChunk) []string {
	sources := make([]string, len(chunks))
	for i, chunk := range chunks {
		if i == 0 {
			sources[i] = chunk.Source
		} else {
			sources[i] = fmt.Sprintf("#line 0 %d\n%s", i+1, chunk.Source)
		}
	}

	return sources
}

// Compile runs compileFn on the decorated chunk sources and remaps its log.
func Compile[A any](chunks []glslprep.SourceChunk, compileFn func(sources []string) Output[A]) Output[A] {
	out := compileFn(Decorate(chunks))
	out.Log = RemapLog(out.Log, chunks)

	return out
}

var (
	// "ERROR: 0:12: ..." as emitted by Intel and AMD drivers.
	intelAMDErrorPattern = regexp.MustCompile(`(?m)^ERROR:\s*(\d+):(\d+)`)
	// "0(12) : ..." as emitted by NVIDIA drivers.
	nvidiaErrorPattern = regexp.MustCompile(`(?m)^(\d+)\((\d+)\)\s*`)
)

// RemapLog rewrites vendor-specific source locations in an info log into
// "file(line)" references against the chunks' origins. Locations that do not
// match a known vendor format, or reference a string index outside chunks,
// are left as-is.
func RemapLog(log string, chunks []glslprep.SourceChunk) string {
	remap := func(pattern *regexp.Regexp, match string) string {
		groups := pattern.FindStringSubmatch(match)

		index, _ := strconv.Atoi(groups[1])
		line, _ := strconv.Atoi(groups[2])

		if index < 1 {
			index = 1
		}

		chunk := index - 1
		if chunk >= len(chunks) {
			return match
		}

		return fmt.Sprintf("%s(%d)", chunks[chunk].File, chunks[chunk].OriginLine(line))
	}

	log = intelAMDErrorPattern.ReplaceAllStringFunc(log, func(match string) string {
		return remap(intelAMDErrorPattern, match)
	})

	return nvidiaErrorPattern.ReplaceAllStringFunc(log, func(match string) string {
		return remap(nvidiaErrorPattern, match)
	})
}
