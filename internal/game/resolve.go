// resolve.go
package game

import (
	"fmt"

	"github.com/xtding233/ticket-odds/internal/economy"
)

// Overrides carries values set outside the YAML files (CLI flags, tests).
// Nil fields leave the profile value in place.
type Overrides struct {
	MaxLevel           *int
	ExpressStart       *int
	CheckpointInterval *int
	FailureProbability *float64
	BaseEntryCost      *int
	CostSchedule       []int
}

func (o Overrides) raw() RawConfig {
	out := RawConfig{
		Levels: LevelsConfig{
			Max:                o.MaxLevel,
			ExpressStart:       o.ExpressStart,
			CheckpointInterval: o.CheckpointInterval,
		},
		Failure: FailureConfig{Probability: o.FailureProbability},
	}
	if o.BaseEntryCost != nil || len(o.CostSchedule) > 0 {
		out.Tickets = &TicketsConfig{BaseEntryCost: o.BaseEntryCost, CostSchedule: o.CostSchedule}
	}
	return out
}

// Resolve merges default → profile → overrides, fills gaps from
// economy.DefaultConfig and validates the result.
func (l *Loader) Resolve(profile string, o Overrides) (RawConfig, economy.Config, error) {
	merged, err := l.LoadMerged(profile)
	if err != nil {
		return RawConfig{}, economy.Config{}, err
	}
	merged = mergeRaw(merged, o.raw())
	if err := ValidateRaw(merged); err != nil {
		return RawConfig{}, economy.Config{}, err
	}
	cfg := EngineConfig(merged)
	// cross-field rules only hold once defaults are filled in
	if err := ValidateRaw(FromEngineConfig(cfg)); err != nil {
		return RawConfig{}, economy.Config{}, fmt.Errorf("profile %q: %w", profile, err)
	}
	return merged, cfg, nil
}

// EngineConfig fills every unset field of raw from economy.DefaultConfig.
func EngineConfig(raw RawConfig) economy.Config {
	cfg := economy.DefaultConfig()
	if raw.Levels.Max != nil {
		cfg.MaxLevel = *raw.Levels.Max
	}
	if raw.Levels.ExpressStart != nil {
		cfg.ExpressStartLevel = *raw.Levels.ExpressStart
	}
	if raw.Levels.CheckpointInterval != nil {
		cfg.CheckpointInterval = *raw.Levels.CheckpointInterval
	}
	if raw.Failure.Probability != nil {
		cfg.FailureProbability = *raw.Failure.Probability
	}
	if raw.Tickets != nil {
		if raw.Tickets.BaseEntryCost != nil {
			cfg.BaseEntryCost = *raw.Tickets.BaseEntryCost
		}
		if len(raw.Tickets.CostSchedule) > 0 {
			cfg.CostSchedule = append([]int(nil), raw.Tickets.CostSchedule...)
		}
	}
	return cfg
}

// FromEngineConfig is the fully populated RawConfig describing cfg.
func FromEngineConfig(cfg economy.Config) RawConfig {
	maxLevel, express, interval := cfg.MaxLevel, cfg.ExpressStartLevel, cfg.CheckpointInterval
	p, entry := cfg.FailureProbability, cfg.BaseEntryCost
	return RawConfig{
		Levels:  LevelsConfig{Max: &maxLevel, ExpressStart: &express, CheckpointInterval: &interval},
		Failure: FailureConfig{Probability: &p},
		Tickets: &TicketsConfig{BaseEntryCost: &entry, CostSchedule: append([]int(nil), cfg.CostSchedule...)},
	}
}
