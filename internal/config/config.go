// Package config loads the optional .codefence.toml project file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Filename is the name of the project configuration file.
const Filename = ".codefence.toml"

// Config is the content of a project configuration file.
type Config struct {
	// Path is the file the configuration was loaded from, empty for defaults.
	Path string `toml:"-"`
	// Root is the directory document names are relative to.
	Root string `toml:"root"`

	Component string   `toml:"component"`
	Indent    int      `toml:"indent"`
	Preview   int      `toml:"preview"`
	Files     []string `toml:"files"`
	Include   []string `toml:"include"`
	Exclude   []string `toml:"exclude"`
}

// Find looks for [Filename] in startDir and its parents.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}

	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}

	for {
		candidate := filepath.Join(dir, Filename)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}

		dir = parent
	}

	return "", false, nil
}

// Load decodes the configuration file at path. A relative root is resolved
// against the directory containing the file.
func Load(path string) (*Config, error) {
	var cfg Config

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}

		return nil, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	if cfg.Indent < 0 {
		return nil, fmt.Errorf("%s: indent must not be negative", path)
	}

	if cfg.Preview < 0 {
		return nil, fmt.Errorf("%s: preview must not be negative", path)
	}

	cfg.Path = path

	if !filepath.IsAbs(cfg.Root) {
		cfg.Root = filepath.Join(filepath.Dir(path), filepath.FromSlash(cfg.Root))
	}

	return &cfg, nil
}

// Discover loads the configuration file found from startDir upwards, or
// returns an empty configuration rooted at startDir when there is none.
func Discover(startDir string) (*Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return nil, err
	}

	if !ok {
		if startDir == "" {
			startDir = "."
		}

		return &Config{Root: startDir}, nil
	}

	return Load(path)
}
