package glslprep

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileContext is the include context threaded by FileProvider: the directory
// of the including file, so relative includes resolve the way C-family
// preprocessors resolve them.
type FileContext struct {
	Dir string
}

// FileProvider reads includes from the local filesystem. A relative "quoted"
// path is tried against the including file's directory first, then each
// search path, then each system path. A <bracketed> path skips the including
// file's directory and tries the system paths first, then the search paths.
// An absolute path is used as-is.
type FileProvider struct {
	SearchPaths []string
	SystemPaths []string
}

// NewFileProvider creates a FileProvider with the given ordered search paths.
func NewFileProvider(searchPaths ...string) *FileProvider {
	return &FileProvider{SearchPaths: searchPaths}
}

// GetInclude implements IncludeProvider. The returned context carries the
// resolved file's directory for the file's own includes.
func (p *FileProvider) GetInclude(path string, ctx FileContext) (string, FileContext, error) {
	return p.read(path, p.candidates(path, ctx))
}

// GetSystemInclude implements SystemIncludeProvider for <bracketed> includes.
func (p *FileProvider) GetSystemInclude(path string, ctx FileContext) (string, FileContext, error) {
	return p.read(path, p.systemCandidates(path))
}

func (p *FileProvider) read(path string, candidates []string) (string, FileContext, error) {
	for _, candidate := range candidates {
		data, err := os.ReadFile(candidate)
		if err == nil {
			return string(data), FileContext{Dir: filepath.Dir(candidate)}, nil
		}

		if !errors.Is(err, fs.ErrNotExist) {
			return "", FileContext{}, fmt.Errorf("failed to read include file: %w", err)
		}
	}

	return "", FileContext{}, fmt.Errorf("%w: %q", ErrIncludeNotFound, path)
}

func (p *FileProvider) candidates(path string, ctx FileContext) []string {
	if filepath.IsAbs(path) {
		return []string{filepath.Clean(path)}
	}

	candidates := make([]string, 0, len(p.SearchPaths)+len(p.SystemPaths)+1)
	if ctx.Dir != "" {
		candidates = append(candidates, filepath.Join(ctx.Dir, path))
	} else {
		// Root file, or a provider used without an initial context: resolve
		// against the working directory.
		candidates = append(candidates, filepath.Clean(path))
	}

	for _, dir := range p.SearchPaths {
		candidates = append(candidates, filepath.Join(dir, path))
	}

	for _, dir := range p.SystemPaths {
		candidates = append(candidates, filepath.Join(dir, path))
	}

	return candidates
}

func (p *FileProvider) systemCandidates(path string) []string {
	if filepath.IsAbs(path) {
		return []string{filepath.Clean(path)}
	}

	candidates := make([]string, 0, len(p.SystemPaths)+len(p.SearchPaths))
	for _, dir := range p.SystemPaths {
		candidates = append(candidates, filepath.Join(dir, path))
	}

	for _, dir := range p.SearchPaths {
		candidates = append(candidates, filepath.Join(dir, path))
	}

	return candidates
}
