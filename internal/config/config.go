package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the generator
type Config struct {
	// Project settings
	ProjectPath string
	UnitTestDir string

	// Target files, relative to the unit test directory
	HeadersFile string
	RunnerFile  string

	// Patterns
	SourcePattern      string
	FunctionPattern    string
	HeadersStartMarker string
	HeadersEndMarker   string
	RunnerStartMarker  string
	RunnerEndMarker    string

	RegistrationTemplate string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	Debug bool
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		ProjectPath:          DefaultProjectPath,
		UnitTestDir:          DefaultUnitTestDir,
		HeadersFile:          DefaultHeadersFile,
		RunnerFile:           DefaultRunnerFile,
		SourcePattern:        DefaultSourcePattern,
		FunctionPattern:      DefaultFunctionPattern,
		HeadersStartMarker:   DefaultHeadersStartMarker,
		HeadersEndMarker:     DefaultHeadersEndMarker,
		RunnerStartMarker:    DefaultRunnerStartMarker,
		RunnerEndMarker:      DefaultRunnerEndMarker,
		RegistrationTemplate: DefaultRegistrationTemplate,
	}
}

// Load creates a config and applies flags. The debug toggle can also come
// from UTGEN_DEBUG, optionally set in a .env file under the project path.
func Load(flags Flags) *Config {
	cfg := New()
	cfg.Apply(flags)
	return cfg
}

// Apply replaces the config flags, honouring UTGEN_DEBUG when the flag is off.
func (c *Config) Apply(flags Flags) {
	c.Flags = flags
	if !c.Flags.Debug {
		c.Flags.Debug = c.debugFromEnv()
	}
}

func (c *Config) debugFromEnv() bool {
	// .env file might not exist, that's okay - use environment variables
	_ = godotenv.Load(filepath.Join(c.ProjectPath, EnvFile))

	v := os.Getenv(DebugEnvVar)
	if v == "" {
		return false
	}
	enabled, err := strconv.ParseBool(v)
	return err == nil && enabled
}

// Validate checks that every configured pattern compiles
func (c *Config) Validate() error {
	patterns := []struct {
		name  string
		value string
	}{
		{"source pattern", c.SourcePattern},
		{"function pattern", c.FunctionPattern},
		{"headers start marker", c.HeadersStartMarker},
		{"headers end marker", c.HeadersEndMarker},
		{"runner start marker", c.RunnerStartMarker},
		{"runner end marker", c.RunnerEndMarker},
	}
	for _, p := range patterns {
		if _, err := regexp.Compile(p.value); err != nil {
			return fmt.Errorf("invalid %s %q: %w", p.name, p.value, err)
		}
	}
	return nil
}

// GetUnitTestDir returns the directory scanned for unit test sources
func (c *Config) GetUnitTestDir() string {
	if filepath.IsAbs(c.UnitTestDir) {
		return c.UnitTestDir
	}
	return filepath.Join(c.ProjectPath, c.UnitTestDir)
}

// GetHeadersPath returns the full path to the declarations file
func (c *Config) GetHeadersPath() string {
	return filepath.Join(c.GetUnitTestDir(), c.HeadersFile)
}

// GetRunnerPath returns the full path to the runner file
func (c *Config) GetRunnerPath() string {
	return filepath.Join(c.GetUnitTestDir(), c.RunnerFile)
}
