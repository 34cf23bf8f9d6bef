package game

import (
	"sync"
	"sync/atomic"

	"github.com/xtding233/ticket-odds/internal/economy"
)

// Live keeps the engine for one profile and swaps it when the profile changes on disk.
type Live struct {
	loader    *Loader
	profile   string
	overrides Overrides
	hook      economy.Hook

	reloadMu sync.Mutex
	engine   atomic.Pointer[economy.Engine]
	version  atomic.Value // string
}

// NewLive resolves profile once; a config error here is fatal to the caller.
func NewLive(loader *Loader, profile string, o Overrides, hook economy.Hook) (*Live, error) {
	l := &Live{loader: loader, profile: profile, overrides: o, hook: hook}
	if err := l.Reload(); err != nil {
		return nil, err
	}
	return l, nil
}

// Engine returns the current engine. Callers keep using the value they got
// even if a reload happens meanwhile.
func (l *Live) Engine() *economy.Engine { return l.engine.Load() }

// Profile returns the profile name the engine was resolved from.
func (l *Live) Profile() string { return l.profile }

// Version returns the config version string of the active engine.
func (l *Live) Version() string {
	v, _ := l.version.Load().(string)
	return v
}

// Paths lists the files whose change should trigger Reload.
func (l *Live) Paths() []string { return l.loader.Paths(l.profile) }

// Reload re-reads the profile. On error the previous engine stays active.
func (l *Live) Reload() error {
	l.reloadMu.Lock()
	defer l.reloadMu.Unlock()

	l.loader.Invalidate()
	raw, cfg, err := l.loader.Resolve(l.profile, l.overrides)
	if err != nil {
		return err
	}
	l.engine.Store(economy.NewEngine(cfg).WithHook(l.hook))
	l.version.Store(raw.Version)
	return nil
}
