package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
)

// ErrLintFailed is returned when at least one shader failed include resolution.
var ErrLintFailed = errors.New("include resolution failed")

// LintCmd represents the lint command
type LintCmd struct {
	Input      string   `arg:"" help:"Shader file or directory" type:"path"`
	SearchPath []string `short:"I" name:"search-path" help:"Additional include search directories"`
}

// Run executes the lint command: crawl every shader under Input and report
// directive and resolution errors without producing output.
func (cmd *LintCmd) Run(ctx *Context) error {
	config, err := LoadConfig(ctx.Config)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	info, err := os.Stat(cmd.Input)
	if err != nil {
		return fmt.Errorf("failed to stat input: %w", err)
	}

	var files []string

	if info.IsDir() {
		files, err = collectShaderFiles(cmd.Input, config.Lint.Extensions)
		if err != nil {
			return fmt.Errorf("failed to scan directory: %w", err)
		}
	} else {
		files = []string{cmd.Input}
	}

	failed := 0

	for _, file := range files {
		if ctx.Verbose {
			color.Blue("Checking %s", file)
		}

		if _, err := expandFile(file, config, cmd.SearchPath); err != nil {
			failed++

			if !ctx.Quiet {
				color.Red("%v", err)
			}
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w in %d of %d files", ErrLintFailed, failed, len(files))
	}

	if !ctx.Quiet {
		color.Green("All %d files resolved cleanly", len(files))
	}

	return nil
}

// collectShaderFiles walks dir and returns the files whose extension matches
// one of the configured shader suffixes.
func collectShaderFiles(dir string, extensions []string) ([]string, error) {
	var files []string

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		for _, want := range extensions {
			if ext == want {
				files = append(files, path)
				break
			}
		}

		return nil
	})

	return files, err
}
