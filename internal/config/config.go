package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/memolab/memlog-mcp/internal/scorer"
	"github.com/memolab/memlog-mcp/internal/store"
)

// Config is the on-disk configuration, read from a TOML file. Every field
// is optional; missing fields resolve to the documented defaults.
type Config struct {
	// NotesPath is the memory log location. Supports a leading "~/".
	NotesPath string `toml:"notes_path"`
	// InsertPosition is "top" or "bottom" (default).
	InsertPosition string `toml:"insert_position"`
	// MaxResults is the result-count ceiling, clamped to [10,200].
	MaxResults int `toml:"max_results"`
	// RecencyBonus toggles the recency bonus; nil means enabled.
	RecencyBonus *bool `toml:"recency_bonus"`
	// Synonyms are custom "key:syn1,syn2" rules merged into the built-in
	// synonym table.
	Synonyms []string `toml:"synonyms"`
	// Weights are per-field weight overrides.
	Weights *scorer.Overrides `toml:"weights"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		NotesPath:      "~/.memlog/memory.md",
		InsertPosition: string(store.InsertBottom),
		MaxResults:     scorer.DefaultMaxResults,
	}
}

// DefaultPath returns the default config file location,
// ~/.memlog/config.toml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".memlog", "config.toml")
}

// Load reads the config file at path, or the default location when path is
// empty. A missing file yields the defaults; a malformed file is an error.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	// notes_path = "" in the file deliberately unsets the storage
	// location; store.New turns that into a declined operation.
	if cfg.InsertPosition == "" {
		cfg.InsertPosition = string(store.InsertBottom)
	}
	return cfg, nil
}

// RecencyEnabled reports whether searches apply the recency bonus.
func (c *Config) RecencyEnabled() bool {
	return c.RecencyBonus == nil || *c.RecencyBonus
}

// OpenStore builds the flat-file store for the configured notes location.
func (c *Config) OpenStore() (*store.Store, error) {
	return store.New(ExpandPath(c.NotesPath), store.InsertPosition(c.InsertPosition))
}

// ExpandPath resolves a leading "~/" against the user home directory.
func ExpandPath(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return p
		}
		return filepath.Join(home, strings.TrimPrefix(strings.TrimPrefix(p, "~"), "/"))
	}
	return p
}
