package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/dhamidi/scribe/code"
)

// FileName is the project configuration file looked up by Find.
const FileName = "scribe.toml"

// Config represents a scribe.toml file.
type Config struct {
	// Indent is "2", "4" or "tab".
	Indent string `toml:"indent"`
	// Newline is "lf" or "crlf".
	Newline string `toml:"newline"`
	// Namespace overrides the namespace declared by tag tables.
	Namespace string `toml:"namespace"`
	// Tables are tag table paths, relative to the config file.
	Tables []string `toml:"tables"`
	// Out is the output directory for generated files.
	Out       string `toml:"out"`
	Verbosity int    `toml:"verbosity"`

	// Dir is the directory the configuration was loaded from.
	Dir string `toml:"-"`
	// Path is the file it was loaded from, empty for defaults.
	Path string `toml:"-"`
}

func Default(dir string) *Config {
	return &Config{
		Indent:  "2",
		Newline: "lf",
		Out:     "generated",
		Dir:     dir,
	}
}

// Load reads a scribe.toml file. Keys missing from the file keep their
// defaults.
func Load(path string) (*Config, error) {
	cfg := Default(filepath.Dir(path))
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("parsing %s: unknown key %q", path, undecoded[0].String())
	}
	cfg.Path = path
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid %s", path)
	}
	return cfg, nil
}

// Find searches for scribe.toml starting from dir and walking up to parent
// directories, stopping at a .git boundary. Defaults rooted at dir are
// returned when no file is found.
func Find(dir string) (*Config, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	start := dir
	for {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}

		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			break
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return Default(start), nil
}

func (c *Config) Validate() error {
	if _, err := c.IndentUnit(); err != nil {
		return err
	}
	if _, err := c.NewlineString(); err != nil {
		return err
	}
	if c.Verbosity < 0 {
		return fmt.Errorf("verbosity must not be negative")
	}
	return nil
}

func (c *Config) IndentUnit() (code.IndentUnit, error) {
	switch c.Indent {
	case "2", "":
		return code.TwoSpaces, nil
	case "4":
		return code.FourSpaces, nil
	case "tab":
		return code.TabUnit, nil
	}
	return "", fmt.Errorf("indent must be \"2\", \"4\" or \"tab\", got %q", c.Indent)
}

func (c *Config) NewlineString() (string, error) {
	switch c.Newline {
	case "lf", "":
		return "\n", nil
	case "crlf":
		return "\r\n", nil
	}
	return "", fmt.Errorf("newline must be \"lf\" or \"crlf\", got %q", c.Newline)
}

// TablePaths returns the configured tag tables resolved against Dir.
func (c *Config) TablePaths() []string {
	paths := make([]string, len(c.Tables))
	for i, t := range c.Tables {
		paths[i] = c.resolve(t)
	}
	return paths
}

// OutDir returns the output directory resolved against Dir.
func (c *Config) OutDir() string {
	return c.resolve(c.Out)
}

func (c *Config) resolve(p string) string {
	if filepath.IsAbs(p) || c.Dir == "" {
		return p
	}
	return filepath.Join(c.Dir, p)
}
