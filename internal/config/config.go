// Package config loads the settings shared by the command line tools.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

// DefaultFile is looked up in the working directory when no path is given.
const DefaultFile = "wollok.toml"

const (
	FormatTree   = "tree"
	FormatSource = "source"
)

// Config holds the complete tool configuration
type Config struct {
	Output OutputConfig `toml:"output"`
	Log    LogConfig    `toml:"log"`
	LSP    LSPConfig    `toml:"lsp"`
}

// OutputConfig controls what the CLI prints
type OutputConfig struct {
	Color  bool   `toml:"color"`
	Format string `toml:"format"`
	Tokens bool   `toml:"tokens"`
}

// LogConfig is handed to commonlog.Configure
type LogConfig struct {
	Verbosity int    `toml:"verbosity"`
	File      string `toml:"file"`
}

type LSPConfig struct {
	Name string `toml:"name"`
}

func Default() *Config {
	return &Config{
		Output: OutputConfig{Color: true, Format: FormatTree},
		LSP:    LSPConfig{Name: "wollok-lsp"},
	}
}

// Load reads path on top of the defaults and applies environment
// overrides. An empty path means $WOLLOK_CONFIG, then DefaultFile; a
// missing default file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = os.Getenv("WOLLOK_CONFIG")
		explicit = path != ""
	}
	if path == "" {
		path = DefaultFile
	}
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); err != nil {
		if explicit || !os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
	} else if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("WOLLOK_NO_COLOR"); v != "" {
		noColor, err := strconv.ParseBool(v)
		if err != nil || noColor {
			c.Output.Color = false
		}
	}
}

func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatTree, FormatSource:
	default:
		return fmt.Errorf("invalid output format %q (want %q or %q)", c.Output.Format, FormatTree, FormatSource)
	}
	if c.Log.Verbosity < 0 {
		return fmt.Errorf("invalid log verbosity %d", c.Log.Verbosity)
	}
	return nil
}
