package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/glsltools/glslprep/cli"
)

// CLI represents the command-line interface
var CLI struct {
	Config  string `help:"Configuration file path" default:"glslprep.yaml"`
	Verbose bool   `help:"Enable verbose output" short:"v"`
	Quiet   bool   `help:"Suppress output" short:"q"`

	Expand  cli.ExpandCmd `cmd:"" help:"Expand #include directives in a shader file"`
	Deps    cli.DepsCmd   `cmd:"" help:"List the files a shader pulls in through includes"`
	Lint    cli.LintCmd   `cmd:"" help:"Check that all includes resolve"`
	Init    cli.InitCmd   `cmd:"" help:"Initialize a new glslprep project"`
	Version VersionCmd    `cmd:"" help:"Show version information"`
}

// VersionCmd represents the version command
type VersionCmd struct{}

// Run executes the version command
func (cmd *VersionCmd) Run() error {
	fmt.Println("glslprep v0.1.0")
	return nil
}

func main() {
	ctx := kong.Parse(&CLI)

	appCtx := &cli.Context{
		Config:  CLI.Config,
		Verbose: CLI.Verbose,
		Quiet:   CLI.Quiet,
	}

	err := ctx.Run(appCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
