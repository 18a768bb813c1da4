package glslprep

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
)

// ErrConfigValidation is returned when configuration validation fails
var ErrConfigValidation = errors.New("configuration validation failed")

// DefaultConfigFile is the config file name the CLI looks for.
const DefaultConfigFile = "glslprep.yaml"

// Config represents the glslprep project configuration
type Config struct {
	SearchPaths []string     `yaml:"search_paths"`
	SystemPaths []string     `yaml:"system_paths"`
	Expand      ExpandConfig `yaml:"expand"`
	Lint        LintConfig   `yaml:"lint"`
}

// ExpandConfig represents defaults for the expand command
type ExpandConfig struct {
	Output         string `yaml:"output"`
	LineDirectives bool   `yaml:"line_directives"`
}

// LintConfig represents defaults for the lint command
type LintConfig struct {
	// Extensions selects which files count as shader sources when linting a
	// directory. Defaults to the usual GLSL suffixes.
	Extensions []string `yaml:"extensions"`
}

func getDefaultConfig() *Config {
	return &Config{
		Lint: LintConfig{
			Extensions: []string{".glsl", ".vert", ".frag", ".geom", ".comp", ".tesc", ".tese"},
		},
	}
}

// LoadConfig loads the configuration from configPath, falling back to
// defaults if the file does not exist. Environment variables referenced as
// ${VAR} or $VAR in path entries are expanded; a .env file in the working
// directory is loaded first if present.
func LoadConfig(configPath string) (*Config, error) {
	if err := loadEnvFiles(); err != nil {
		return nil, fmt.Errorf("failed to load environment files: %w", err)
	}

	if configPath == "" {
		configPath = DefaultConfigFile
	}

	_, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		config := getDefaultConfig()
		expandConfigEnvVars(config)

		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse YAML with strict mode to detect unknown fields
	var config Config

	err = yaml.UnmarshalWithOptions(data, &config, yaml.Strict())
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	applyDefaults(&config)
	expandConfigEnvVars(&config)

	return &config, nil
}

// validateConfig validates the configuration for common errors
func validateConfig(config *Config) error {
	for _, dir := range config.SearchPaths {
		if dir == "" {
			return fmt.Errorf("%w: empty search path entry", ErrConfigValidation)
		}
	}

	for _, dir := range config.SystemPaths {
		if dir == "" {
			return fmt.Errorf("%w: empty system path entry", ErrConfigValidation)
		}
	}

	for _, ext := range config.Lint.Extensions {
		if ext == "" || ext[0] != '.' {
			return fmt.Errorf("%w: lint extension %q must start with '.'", ErrConfigValidation, ext)
		}
	}

	return nil
}

// applyDefaults fills in values not set in the config file
func applyDefaults(config *Config) {
	if len(config.Lint.Extensions) == 0 {
		config.Lint.Extensions = getDefaultConfig().Lint.Extensions
	}
}

// loadEnvFiles loads a .env file if one exists
func loadEnvFiles() error {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return fmt.Errorf("failed to load .env file: %w", err)
		}
	}

	return nil
}

var (
	bracedVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)
	bareVarPattern   = regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
)

// expandEnvVars expands environment variables in the format ${VAR} or $VAR
func expandEnvVars(s string) string {
	s = bracedVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(match[2 : len(match)-1])
	})

	return bareVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(match[1:])
	})
}

// expandConfigEnvVars expands environment variables in all path entries
func expandConfigEnvVars(config *Config) {
	for i, dir := range config.SearchPaths {
		config.SearchPaths[i] = expandEnvVars(dir)
	}

	for i, dir := range config.SystemPaths {
		config.SystemPaths[i] = expandEnvVars(dir)
	}

	config.Expand.Output = expandEnvVars(config.Expand.Output)
}
