// Package config loads loader settings from defaults, an optional YAML file
// and command-line flags. Precedence (highest to lowest): flags > config file > defaults.
package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/japaniel/lexique/pkg/lexique"
)

// DefaultFile is picked up from the working directory when no --config is given.
const DefaultFile = "lexique.yaml"

// ErrInvalid marks configuration that cannot be used to run the loader.
var ErrInvalid = errors.New("invalid configuration")

// Config holds all loader settings.
type Config struct {
	Output  string   `koanf:"output"`
	Sheet   string   `koanf:"sheet"`
	Verbose bool     `koanf:"verbose"`
	Classes []string `koanf:"classes"`
}

// Load builds a Config. cfgFile may be empty, in which case DefaultFile is used
// if present. It returns the config file actually read ("" when none).
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, string, error) {
	k := koanf.New(".")

	defaults := map[string]interface{}{
		"output":  "",
		"sheet":   "",
		"verbose": false,
		"classes": lexique.DefaultClasses,
	}
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, "", errors.Wrap(err, "load defaults")
	}

	used := findConfigFile(cfgFile)
	if cfgFile != "" && used == "" {
		return nil, "", errors.Wrapf(ErrInvalid, "config file %s not found", cfgFile)
	}
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, "", errors.Wrapf(ErrInvalid, "parse %s: %v", used, err)
		}
	}

	// Unchanged flags do not override values already set by the file.
	if flags != nil {
		if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
			return nil, "", errors.Wrap(err, "load flags")
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, "", errors.Wrapf(ErrInvalid, "unmarshal: %v", err)
	}
	return &cfg, used, nil
}

// Validate checks the settings required for a run.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Output) == "" {
		return errors.Wrap(ErrInvalid, "output database path is required (--output)")
	}
	if len(c.Classes) == 0 {
		return errors.Wrap(ErrInvalid, "at least one grammatical class is required")
	}
	for _, cl := range c.Classes {
		if strings.TrimSpace(cl) == "" {
			return errors.Wrap(ErrInvalid, "grammatical classes must be non-empty")
		}
	}
	return nil
}

func findConfigFile(explicit string) string {
	if explicit != "" {
		if _, err := os.Stat(explicit); err == nil {
			return explicit
		}
		return ""
	}
	if _, err := os.Stat(DefaultFile); err == nil {
		return DefaultFile
	}
	return ""
}
