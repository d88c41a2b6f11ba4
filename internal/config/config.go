// Package config loads classdump settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/dhamidi/classdump/classfile"
	"github.com/dhamidi/classdump/format"
)

// FileName is looked up in the working directory when no path is given.
const FileName = ".classdump.yaml"

var ColorModes = []string{"auto", "always", "never"}

type Config struct {
	Format    string `yaml:"format"`
	Color     string `yaml:"color"`
	Verbosity int    `yaml:"verbosity"`
	LogFile   string `yaml:"log_file"`
	Legacy    Legacy `yaml:"legacy"`
}

// Legacy selects decoding quirks for class files dumped by older tools.
type Legacy struct {
	InvertedAccessFlags     bool `yaml:"inverted_access_flags"`
	InterfaceTagByte        bool `yaml:"interface_tag_byte"`
	SingleSlotWideConstants bool `yaml:"single_slot_wide_constants"`
}

// All enables every quirk.
func (l *Legacy) All() {
	l.InvertedAccessFlags = true
	l.InterfaceTagByte = true
	l.SingleSlotWideConstants = true
}

func Default() *Config {
	return &Config{Format: "tree", Color: "auto"}
}

// Load reads path, or FileName in dir when path is empty. A missing
// FileName is not an error; a missing explicit path is.
func Load(path, dir string) (*Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		path = filepath.Join(dir, FileName)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if !slices.Contains(format.Names, c.Format) {
		return fmt.Errorf("unknown format %q (expected one of %v)", c.Format, format.Names)
	}
	if !slices.Contains(ColorModes, c.Color) {
		return fmt.Errorf("unknown color mode %q (expected one of %v)", c.Color, ColorModes)
	}
	return nil
}

// Options translates the legacy block into decoder options.
func (c *Config) Options() []classfile.Option {
	var opts []classfile.Option
	if c.Legacy.InvertedAccessFlags {
		opts = append(opts, classfile.WithInvertedAccessFlags())
	}
	if c.Legacy.InterfaceTagByte {
		opts = append(opts, classfile.WithInterfaceTagByte())
	}
	if c.Legacy.SingleSlotWideConstants {
		opts = append(opts, classfile.WithSingleSlotWideConstants())
	}
	return opts
}
