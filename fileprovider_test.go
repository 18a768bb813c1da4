package glslprep

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	assert.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestFileProviderRelativeToIncluder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "root.glsl"), "#include \"sub/a.glsl\"\nmain\n")
	writeFile(t, filepath.Join(dir, "sub", "a.glsl"), "#include \"b.glsl\"\nA\n")
	writeFile(t, filepath.Join(dir, "sub", "b.glsl"), "B\n")

	chunks, err := ProcessFile(filepath.Join(dir, "root.glsl"), NewFileProvider(), FileContext{})
	assert.NoError(t, err)

	var b strings.Builder
	for _, chunk := range chunks {
		b.WriteString(chunk.Source)
	}

	// b.glsl resolves relative to sub/, not the root file's directory.
	assert.Equal(t, "B\nA\nmain\n", b.String())
}

func TestFileProviderSearchPaths(t *testing.T) {
	dir := t.TempDir()
	libDir := filepath.Join(dir, "lib")
	writeFile(t, filepath.Join(dir, "root.glsl"), "#include <noise.glsl>\n")
	writeFile(t, filepath.Join(libDir, "noise.glsl"), "float noise();\n")

	chunks, err := ProcessFile(filepath.Join(dir, "root.glsl"), NewFileProvider(libDir), FileContext{})
	assert.NoError(t, err)
	assert.Equal(t, 1, len(chunks))
	assert.Equal(t, "float noise();\n", chunks[0].Source)
}

func TestFileProviderIncluderDirWinsOverSearchPath(t *testing.T) {
	dir := t.TempDir()
	libDir := filepath.Join(dir, "lib")
	writeFile(t, filepath.Join(dir, "root.glsl"), "#include \"common.glsl\"\n")
	writeFile(t, filepath.Join(dir, "common.glsl"), "local\n")
	writeFile(t, filepath.Join(libDir, "common.glsl"), "from lib\n")

	chunks, err := ProcessFile(filepath.Join(dir, "root.glsl"), NewFileProvider(libDir), FileContext{})
	assert.NoError(t, err)
	assert.Equal(t, "local\n", chunks[0].Source)
}

func TestFileProviderSystemIncludeOrder(t *testing.T) {
	dir := t.TempDir()
	sysDir := filepath.Join(dir, "system")
	writeFile(t, filepath.Join(dir, "root.glsl"), "#include <common.glsl>\n#include \"common.glsl\"\n")
	writeFile(t, filepath.Join(dir, "common.glsl"), "local\n")
	writeFile(t, filepath.Join(sysDir, "common.glsl"), "system\n")

	provider := NewFileProvider()
	provider.SystemPaths = []string{sysDir}

	chunks, err := ProcessFile(filepath.Join(dir, "root.glsl"), provider, FileContext{})
	assert.NoError(t, err)
	assert.Equal(t, 2, len(chunks))

	// Bracketed resolves from the system paths, skipping the including
	// file's directory; quoted prefers the including file's directory.
	assert.Equal(t, "system\n", chunks[0].Source)
	assert.Equal(t, "local\n", chunks[1].Source)
}

func TestFileProviderSystemFallsBackToSearchPaths(t *testing.T) {
	dir := t.TempDir()
	libDir := filepath.Join(dir, "lib")
	writeFile(t, filepath.Join(dir, "root.glsl"), "#include <noise.glsl>\n")
	writeFile(t, filepath.Join(libDir, "noise.glsl"), "float noise();\n")

	provider := NewFileProvider(libDir)
	provider.SystemPaths = []string{filepath.Join(dir, "no-such-dir")}

	chunks, err := ProcessFile(filepath.Join(dir, "root.glsl"), provider, FileContext{})
	assert.NoError(t, err)
	assert.Equal(t, "float noise();\n", chunks[0].Source)
}

func TestFileProviderQuotedFallsBackToSystemPaths(t *testing.T) {
	dir := t.TempDir()
	sysDir := filepath.Join(dir, "system")
	writeFile(t, filepath.Join(dir, "root.glsl"), "#include \"deep.glsl\"\n")
	writeFile(t, filepath.Join(sysDir, "deep.glsl"), "deep\n")

	provider := NewFileProvider()
	provider.SystemPaths = []string{sysDir}

	chunks, err := ProcessFile(filepath.Join(dir, "root.glsl"), provider, FileContext{})
	assert.NoError(t, err)
	assert.Equal(t, "deep\n", chunks[0].Source)
}

func TestFileProviderAbsolutePath(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "abs.glsl")
	writeFile(t, target, "absolute\n")

	source, ctx, err := NewFileProvider().GetInclude(target, FileContext{})
	assert.NoError(t, err)
	assert.Equal(t, "absolute\n", source)
	assert.Equal(t, filepath.Dir(target), ctx.Dir)
}

func TestFileProviderNotFound(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "root.glsl"), "#include \"missing.glsl\"\n")

	_, err := ProcessFile(filepath.Join(dir, "root.glsl"), NewFileProvider(), FileContext{})
	assert.IsError(t, err, ErrInclude)
	assert.IsError(t, err, ErrIncludeNotFound)
	assert.Contains(t, err.Error(), "missing.glsl")
}
