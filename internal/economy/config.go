package economy

import (
	"math"

	"github.com/samber/lo"
)

// Config holds the constants of one game economy. It is a value; engines keep their own copy.
type Config struct {
	MaxLevel           int     `json:"max_level"`
	FailureProbability float64 `json:"failure_probability"`
	ExpressStartLevel  int     `json:"express_start_level"`
	CheckpointInterval int     `json:"checkpoint_interval"` // levels divisible by this are safe; <= 0 means no checkpoints
	BaseEntryCost      int     `json:"base_entry_cost"`
	CostSchedule       []int   `json:"cost_schedule"` // cost of the i-th failure; last entry repeats
}

// DefaultConfig returns the stock economy: 50 levels, a checkpoint every 5th level,
// 25% failure chance per risky level, express runs starting at level 20.
func DefaultConfig() Config {
	return Config{
		MaxLevel:           50,
		FailureProbability: 0.25,
		ExpressStartLevel:  20,
		CheckpointInterval: 5,
		BaseEntryCost:      1,
		CostSchedule:       []int{0, 1, 2, 4, 8, 10},
	}
}

// Schedule returns the cost schedule described by the config.
func (c Config) Schedule() Schedule {
	return NewSchedule(c.CostSchedule, c.BaseEntryCost)
}

// normalize clamps out-of-range values so that every calculation stays total.
func (c Config) normalize() Config {
	out := c
	out.MaxLevel = nonNegative(c.MaxLevel)
	out.FailureProbability = clampProb(c.FailureProbability)
	out.ExpressStartLevel = lo.Clamp(c.ExpressStartLevel, 1, math.MaxInt)
	if c.CheckpointInterval < 0 {
		out.CheckpointInterval = 0
	}
	out.BaseEntryCost = nonNegative(c.BaseEntryCost)
	out.CostSchedule = make([]int, len(c.CostSchedule))
	for i, v := range c.CostSchedule {
		out.CostSchedule[i] = nonNegative(v)
	}
	return out
}
