package glcompiler

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/glsltools/glslprep"
)

var chunks = []glslprep.SourceChunk{
	{Source: "void main() {\n", File: "root.glsl", StartLine: 1},
	{Source: "float noise();\n", File: "lib/noise.glsl", StartLine: 1},
	{Source: "}\n", File: "root.glsl", StartLine: 3},
}

func TestDecorate(t *testing.T) {
	sources := Decorate(chunks)

	assert.Equal(t, []string{
		"void main() {\n",
		"#line 0 2\nfloat noise();\n",
		"#line 0 3\n}\n",
	}, sources)
}

func TestRemapLogIntelAMD(t *testing.T) {
	log := "ERROR: 2:1: 'noise' : no matching overloaded function found\nERROR: 0:2: '}' : syntax error"

	assert.Equal(t,
		"lib/noise.glsl(1): 'noise' : no matching overloaded function found\nroot.glsl(2): '}' : syntax error",
		RemapLog(log, chunks))
}

func TestRemapLogNVIDIA(t *testing.T) {
	log := "3(1) : error C0000: syntax error"

	assert.Equal(t, "root.glsl(3): error C0000: syntax error", RemapLog(log, chunks))
}

func TestRemapLogLeavesUnknownLocations(t *testing.T) {
	// String index past the chunk list, and free-form text, stay untouched.
	log := "ERROR: 9:1: mystery\nlinking failed"

	assert.Equal(t, log, RemapLog(log, chunks))
}

func TestCompile(t *testing.T) {
	out := Compile(chunks, func(sources []string) Output[int] {
		assert.Equal(t, 3, len(sources))
		assert.Equal(t, "void main() {\n", sources[0])

		return Output[int]{Artifact: 42, Log: "ERROR: 2:1: bad"}
	})

	assert.Equal(t, 42, out.Artifact)
	assert.Equal(t, "lib/noise.glsl(1): bad", out.Log)
}
