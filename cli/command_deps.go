package cli

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/glsltools/glslprep"
)

// DepsCmd represents the deps command
type DepsCmd struct {
	Input      string   `arg:"" help:"Root shader file" type:"path"`
	SearchPath []string `short:"I" name:"search-path" help:"Additional include search directories"`
}

// Run executes the deps command, printing every file the crawl touched
// (the root included) in first-visit order.
func (cmd *DepsCmd) Run(ctx *Context) error {
	config, err := LoadConfig(ctx.Config)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	tracker := glslprep.NewDepTracker[glslprep.FileContext](newFileProvider(config, cmd.SearchPath))

	if _, err := glslprep.ProcessFile(cmd.Input, tracker, glslprep.FileContext{}); err != nil {
		if !ctx.Quiet {
			color.Red("Failed to crawl %s: %v", cmd.Input, err)
		}

		return err
	}

	for _, dep := range tracker.Deps() {
		fmt.Println(dep)
	}

	return nil
}
