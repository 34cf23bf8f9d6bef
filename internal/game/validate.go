package game

import (
	"fmt"
	"math"
	"strings"
)

// ValidateRaw checks semantic constraints of a RawConfig.
func ValidateRaw(cfg RawConfig) error {
	var errs []string

	// levels
	if cfg.Levels.Max != nil && *cfg.Levels.Max < 1 {
		errs = append(errs, "levels.max must be >= 1")
	}
	if cfg.Levels.ExpressStart != nil {
		if *cfg.Levels.ExpressStart < 1 {
			errs = append(errs, "levels.express_start must be >= 1")
		}
		if cfg.Levels.Max != nil && *cfg.Levels.ExpressStart > *cfg.Levels.Max {
			errs = append(errs, "levels.express_start must not exceed levels.max")
		}
	}
	if cfg.Levels.CheckpointInterval != nil && *cfg.Levels.CheckpointInterval < 0 {
		errs = append(errs, "levels.checkpoint_interval must be >= 0 (0 disables checkpoints)")
	}

	// failure.probability
	if p := cfg.Failure.Probability; p != nil {
		if math.IsNaN(*p) || *p < 0 || *p > 1 {
			errs = append(errs, "failure.probability must be in [0,1]")
		}
	}

	// tickets
	if cfg.Tickets != nil {
		if cfg.Tickets.BaseEntryCost != nil && *cfg.Tickets.BaseEntryCost < 0 {
			errs = append(errs, "tickets.base_entry_cost must be >= 0")
		}
		for i, c := range cfg.Tickets.CostSchedule {
			if c < 0 {
				errs = append(errs, fmt.Sprintf("tickets.cost_schedule[%d] must be >= 0", i))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}
