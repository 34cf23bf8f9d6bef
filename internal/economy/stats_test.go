package economy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCostSummary(t *testing.T) {
	s := defaultSchedule()
	st := CostSummary(2, 2, 0.5, s)

	// costs 0, 2, 6 with probabilities .25, .5, .25
	assert.InDelta(t, 2.5, st.Mean, 1e-9)
	assert.InDelta(t, 4.75, st.Var, 1e-9)
	assert.InDelta(t, 2.179449, st.StdDev, 1e-6)
	assert.Equal(t, 2.0, st.P50)
	assert.Equal(t, 6.0, st.P90)
	assert.Equal(t, 6.0, st.P99)
}

func TestCostSummaryMeanIsExpectedCost(t *testing.T) {
	s := defaultSchedule()
	st := CostSummary(40, 1, 0.25, s)

	assert.InDelta(t, ExpectedAdditionalCost(40, 1, 0.25, s), st.Mean, 1e-9)
	assert.LessOrEqual(t, st.P50, st.P90)
	assert.LessOrEqual(t, st.P90, st.P99)
}

func TestCostSummaryNoTrials(t *testing.T) {
	st := CostSummary(0, 4, 0.25, defaultSchedule())
	assert.Equal(t, Stats{}, st)
}
