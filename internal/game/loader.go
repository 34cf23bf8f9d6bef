package game

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// DefaultProfile names the base file every profile is merged onto.
const DefaultProfile = "default"

// Paths helper for default/profile files.
type Paths struct {
	BaseDir string // base directory, e.g., /opt/app/config
}

func (p Paths) DefaultPath() string {
	return filepath.Join(p.BaseDir, "games", DefaultProfile+".yaml")
}
func (p Paths) ProfilePath(profile string) string {
	return filepath.Join(p.BaseDir, "games", profile+".yaml")
}

// Loader reads YAML configs and merges default → profile.
type Loader struct {
	paths Paths

	mu    sync.RWMutex
	cache map[string]RawConfig // key: profile name
}

// NewLoader creates a config loader with the given base directory.
func NewLoader(baseDir string) *Loader {
	return &Loader{
		paths: Paths{BaseDir: baseDir},
		cache: make(map[string]RawConfig),
	}
}

// Paths returns the files a profile is built from, default first.
func (l *Loader) Paths(profile string) []string {
	out := []string{l.paths.DefaultPath()}
	if profile != "" && profile != DefaultProfile {
		out = append(out, l.paths.ProfilePath(profile))
	}
	return out
}

// LoadMerged loads and merges default → profile (profile optional).
// It returns the merged RawConfig without defaults applied.
func (l *Loader) LoadMerged(profile string) (RawConfig, error) {
	if profile == "" {
		profile = DefaultProfile
	}
	l.mu.RLock()
	if cfg, ok := l.cache[profile]; ok {
		l.mu.RUnlock()
		return cfg, nil
	}
	l.mu.RUnlock()

	defCfg, err := readYAML(l.paths.DefaultPath())
	if err != nil {
		return RawConfig{}, fmt.Errorf("read default: %w", err)
	}
	merged := defCfg
	if profile != DefaultProfile {
		profCfg, err := readYAML(l.paths.ProfilePath(profile))
		if err != nil {
			return RawConfig{}, fmt.Errorf("read profile %s: %w", profile, err)
		}
		merged = mergeRaw(defCfg, profCfg)
	}

	l.mu.Lock()
	l.cache[profile] = merged
	l.cache[DefaultProfile] = defCfg
	l.mu.Unlock()

	return merged, nil
}

// Invalidate clears loader's cache. Call after hot-reload detects changes.
func (l *Loader) Invalidate() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cache = make(map[string]RawConfig)
}

// readYAML loads a YAML file into RawConfig. Missing files return zero cfg, no error.
func readYAML(path string) (RawConfig, error) {
	var cfg RawConfig
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return RawConfig{}, nil
		}
		return RawConfig{}, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return RawConfig{}, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return cfg, nil
}

// mergeRaw overlays b onto a: every field set in b wins.
// The cost schedule is replaced as a whole, never merged element-wise.
func mergeRaw(a, b RawConfig) RawConfig {
	out := a

	if b.Version != "" {
		out.Version = b.Version
	}
	if b.Notes != "" {
		out.Notes = b.Notes
	}

	// levels
	if b.Levels.Max != nil {
		out.Levels.Max = b.Levels.Max
	}
	if b.Levels.ExpressStart != nil {
		out.Levels.ExpressStart = b.Levels.ExpressStart
	}
	if b.Levels.CheckpointInterval != nil {
		out.Levels.CheckpointInterval = b.Levels.CheckpointInterval
	}

	// failure
	if b.Failure.Probability != nil {
		out.Failure.Probability = b.Failure.Probability
	}

	// tickets
	switch {
	case out.Tickets == nil && b.Tickets != nil:
		c := *b.Tickets
		c.CostSchedule = append([]int(nil), b.Tickets.CostSchedule...)
		out.Tickets = &c
	case out.Tickets != nil && b.Tickets != nil:
		c := *out.Tickets
		if b.Tickets.BaseEntryCost != nil {
			c.BaseEntryCost = b.Tickets.BaseEntryCost
		}
		if len(b.Tickets.CostSchedule) > 0 {
			c.CostSchedule = append([]int(nil), b.Tickets.CostSchedule...)
		}
		out.Tickets = &c
	}

	return out
}
