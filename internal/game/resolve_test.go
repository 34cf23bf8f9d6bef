package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xtding233/ticket-odds/internal/economy"
)

func TestResolveAppliesOverridesLast(t *testing.T) {
	dir := t.TempDir()
	writeProfile(t, dir, DefaultProfile, defaultYAML)
	writeProfile(t, dir, "hardcore", hardcoreYAML)

	raw, cfg, err := NewLoader(dir).Resolve("hardcore", Overrides{
		FailureProbability: ptr(0.1),
		CostSchedule:       []int{0, 5},
	})
	require.NoError(t, err)

	assert.Equal(t, "1-hardcore", raw.Version)
	assert.Equal(t, economy.Config{
		MaxLevel:           50,
		FailureProbability: 0.1,
		ExpressStartLevel:  20,
		CheckpointInterval: 5,
		BaseEntryCost:      1,
		CostSchedule:       []int{0, 5},
	}, cfg)
}

func TestResolveRejectsCrossFieldViolation(t *testing.T) {
	dir := t.TempDir()
	writeProfile(t, dir, DefaultProfile, "levels:\n  express_start: 60\n")

	_, _, err := NewLoader(dir).Resolve("", Overrides{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "express_start must not exceed")
}

func TestFromEngineConfigRoundTrip(t *testing.T) {
	cfg := economy.DefaultConfig()
	assert.Equal(t, cfg, EngineConfig(FromEngineConfig(cfg)))
}
