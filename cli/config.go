package cli

import (
	"github.com/glsltools/glslprep"
)

// Context represents the global context for commands
type Context struct {
	Config  string
	Verbose bool
	Quiet   bool
}

// LoadConfig loads configuration from the specified file
func LoadConfig(configPath string) (*glslprep.Config, error) {
	return glslprep.LoadConfig(configPath)
}
