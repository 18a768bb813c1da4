package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/glsltools/glslprep"
	"github.com/glsltools/glslprep/glcompiler"
)

// ExpandCmd represents the expand command
type ExpandCmd struct {
	Input          string   `arg:"" help:"Root shader file" type:"path"`
	Output         string   `short:"o" help:"Output file (default: stdout)"`
	SearchPath     []string `short:"I" name:"search-path" help:"Additional include search directories"`
	LineDirectives bool     `help:"Decorate chunks with #line pragmas as submitted to the GL compiler"`
}

// Run executes the expand command
func (cmd *ExpandCmd) Run(ctx *Context) error {
	config, err := LoadConfig(ctx.Config)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if ctx.Verbose {
		color.Blue("Expanding %s", cmd.Input)
	}

	chunks, err := expandFile(cmd.Input, config, cmd.SearchPath)
	if err != nil {
		if !ctx.Quiet {
			color.Red("Failed to expand %s: %v", cmd.Input, err)
		}

		return err
	}

	text := renderChunks(chunks, cmd.LineDirectives || config.Expand.LineDirectives)

	output := cmd.Output
	if output == "" {
		output = config.Expand.Output
	}

	if output == "" {
		fmt.Print(text)
		return nil
	}

	if err := os.WriteFile(output, []byte(text), 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	if !ctx.Quiet {
		color.Green("Wrote %s (%d chunks)", output, len(chunks))
	}

	return nil
}

// expandFile crawls root with a filesystem provider built from the config and
// any extra search paths given on the command line.
func expandFile(root string, config *glslprep.Config, extraPaths []string) ([]glslprep.SourceChunk, error) {
	provider := newFileProvider(config, extraPaths)

	return glslprep.ProcessFile(root, provider, glslprep.FileContext{})
}

// newFileProvider builds the filesystem provider shared by the expand, deps,
// and lint commands: configured search paths plus command-line ones, and the
// configured system paths for <bracketed> includes.
func newFileProvider(config *glslprep.Config, extraPaths []string) *glslprep.FileProvider {
	searchPaths := append([]string{}, config.SearchPaths...)
	searchPaths = append(searchPaths, extraPaths...)

	provider := glslprep.NewFileProvider(searchPaths...)
	provider.SystemPaths = append([]string{}, config.SystemPaths...)

	return provider
}

func renderChunks(chunks []glslprep.SourceChunk, lineDirectives bool) string {
	if lineDirectives {
		return strings.Join(glcompiler.Decorate(chunks), "")
	}

	var b strings.Builder
	for _, chunk := range chunks {
		b.WriteString(chunk.Source)
	}

	return b.String()
}
