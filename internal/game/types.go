// types.go
package game

// RawConfig is one YAML game profile. Every field is optional so that a
// profile only states what it changes relative to default.yaml.
type RawConfig struct {
	Version string         `yaml:"version"`
	Levels  LevelsConfig   `yaml:"levels"`
	Failure FailureConfig  `yaml:"failure"`
	Tickets *TicketsConfig `yaml:"tickets,omitempty"`
	Notes   string         `yaml:"notes,omitempty"`
}

type LevelsConfig struct {
	Max                *int `yaml:"max"`
	ExpressStart       *int `yaml:"express_start"`
	CheckpointInterval *int `yaml:"checkpoint_interval"`
}

type FailureConfig struct {
	Probability *float64 `yaml:"probability"`
}

type TicketsConfig struct {
	BaseEntryCost *int  `yaml:"base_entry_cost"`
	CostSchedule  []int `yaml:"cost_schedule"` // replaces the inherited schedule when non-empty
}
