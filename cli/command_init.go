package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/glsltools/glslprep"
)

// ErrConfigExists is returned when init would overwrite an existing config file.
var ErrConfigExists = errors.New("configuration file already exists")

// InitCmd represents the init command
type InitCmd struct{}

const starterConfig = `# glslprep project configuration
search_paths:
  - shaders/include

# Directories searched for #include <...> (and as a last resort for "...")
# system_paths:
#   - /usr/share/glsl

expand:
  # output: out.glsl
  line_directives: false

lint:
  extensions: [.glsl, .vert, .frag, .geom, .comp, .tesc, .tese]
`

// Run writes a starter configuration file in the working directory.
func (cmd *InitCmd) Run(ctx *Context) error {
	path := ctx.Config
	if path == "" {
		path = glslprep.DefaultConfigFile
	}

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%w: %s", ErrConfigExists, path)
	}

	if err := os.WriteFile(path, []byte(starterConfig), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	if !ctx.Quiet {
		color.Green("Created %s", path)
	}

	return nil
}
