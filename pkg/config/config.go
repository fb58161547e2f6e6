// Package config loads the optional mffmt discovery configuration.
//
// A project can place a .mffmt.toml file at its root to change which files
// are discovered:
//
//	# .mffmt.toml
//	patterns = ["**/*.json", "**/*.mfapp", "**/*.mfgraph"]
//	exclude = ["build/", "out/", "vcpkg", ".git/", "third_party/"]
//	include_hidden = false
//
// Omitted keys keep their defaults. An explicitly empty exclude list
// disables exclusion. Layout rules are fixed and cannot be configured here.
package config

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/mffmt/pkg/discover"
	"github.com/matzehuels/mffmt/pkg/errors"
)

// FileName is the configuration file looked up in the working root.
const FileName = ".mffmt.toml"

// Config is the decoded configuration file.
type Config struct {
	Patterns      []string `toml:"patterns"`
	Exclude       []string `toml:"exclude"`
	IncludeHidden bool     `toml:"include_hidden"`

	// Path is the file the configuration was read from, empty for defaults.
	Path string `toml:"-"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Patterns: append([]string(nil), discover.DefaultPatterns...),
		Exclude:  append([]string(nil), discover.DefaultExclude...),
	}
}

// Load reads the configuration file at path. An empty path looks for
// FileName in dir and falls back to [Default] when it does not exist; an
// explicit path must exist.
func Load(dir, path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = filepath.Join(dir, FileName)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "config %s", path)
	}
	cfg.Path = path
	return cfg, nil
}

// Parse decodes TOML configuration data on top of [Default].
func Parse(data []byte) (Config, error) {
	cfg := Default()
	var raw Config
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return Config{}, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "unknown keys: %s", strings.Join(keys, ", "))
	}

	if md.IsDefined("patterns") {
		if len(raw.Patterns) == 0 {
			return Config{}, errors.New(errors.ErrCodeInvalidConfig, "patterns cannot be empty")
		}
		cfg.Patterns = raw.Patterns
	}
	if md.IsDefined("exclude") {
		cfg.Exclude = append([]string{}, raw.Exclude...)
	}
	cfg.IncludeHidden = raw.IncludeHidden

	if err := cfg.Discovery().Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Discovery converts the configuration into discovery options.
func (c Config) Discovery() discover.Options {
	return discover.Options{
		Patterns:      c.Patterns,
		Exclude:       c.Exclude,
		IncludeHidden: c.IncludeHidden,
	}
}
