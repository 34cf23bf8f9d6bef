package economy

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaxFailuresCoveredRegular(t *testing.T) {
	s := defaultSchedule()

	// entry 1, then failures cost 0 and 1; the third (2) no longer fits.
	assert.Equal(t, 2, s.MaxFailuresCovered(3, false))
	assert.Equal(t, 0, s.MaxFailuresCovered(0, false))
	assert.Equal(t, 0, s.MaxFailuresCovered(-7, false))
	assert.Equal(t, 1, s.MaxFailuresCovered(1, false))
	assert.Equal(t, 40, s.MaxFailuresCovered(366, false))
}

func TestMaxFailuresCoveredExpress(t *testing.T) {
	s := defaultSchedule()

	assert.Equal(t, 1, s.MaxFailuresCovered(0, true))
	assert.Equal(t, 3, s.MaxFailuresCovered(3, true))
	assert.Equal(t, 24, s.MaxFailuresCovered(205, true))
	assert.Equal(t, 1, s.MaxFailuresCovered(-2, true), "negative budget is treated as zero")
}

func TestMaxFailuresCoveredMatchesTotalCost(t *testing.T) {
	s := defaultSchedule()
	for budget := 1; budget <= 400; budget++ {
		f := s.MaxFailuresCovered(budget, false)
		assert.LessOrEqual(t, s.TotalCost(f), budget, "budget=%d", budget)
		assert.Greater(t, s.TotalCost(f+1), budget, "budget=%d", budget)
	}
}

func TestMaxFailuresCoveredZeroPlateauTerminates(t *testing.T) {
	s := NewSchedule([]int{0}, 1)

	assert.Equal(t, MaxFailureBound, s.MaxFailuresCovered(5, false))
	assert.Equal(t, MaxFailureBound, s.MaxAdditionalFailures(0, 3, false))
}

func TestMaxAdditionalFailures(t *testing.T) {
	s := defaultSchedule()

	// failures #2 and #3 cost 2 and 4; #4 costs 8.
	assert.Equal(t, 2, s.MaxAdditionalFailures(6, 2, false))
	assert.Equal(t, 2, s.MaxAdditionalFailures(10, 2, false))
	assert.Equal(t, 0, s.MaxAdditionalFailures(0, 3, false))
	assert.Equal(t, 1, s.MaxAdditionalFailures(0, 0, false), "the first failure is free")
	assert.Equal(t, 0, s.MaxAdditionalFailures(-3, 5, false))
}

func TestMaxAdditionalFailuresExpressBaseline(t *testing.T) {
	s := defaultSchedule()

	// the waived entry fee is taken off the baseline, so one ticket less is usable.
	assert.Equal(t, 1, s.MaxAdditionalFailures(6, 2, true))
	assert.Equal(t, 0, s.MaxAdditionalFailures(0, 0, true))
	assert.Equal(t, 1, s.MaxAdditionalFailures(1, 0, true))
}

func TestMaxAdditionalFailuresDefinition(t *testing.T) {
	s := defaultSchedule()
	for so := 0; so <= 8; so++ {
		for budget := 0; budget <= 80; budget++ {
			f := s.MaxAdditionalFailures(budget, so, false)
			assert.LessOrEqual(t, s.TotalCost(so+f)-s.TotalCost(so), budget)
			assert.Greater(t, s.TotalCost(so+f+1)-s.TotalCost(so), budget)
		}
	}
}

func TestMaxAdditionalFailuresLongHistory(t *testing.T) {
	s := defaultSchedule()

	// far past the table every failure costs the plateau of 10.
	assert.Equal(t, 2, s.MaxAdditionalFailures(25, math.MaxInt, false))
	assert.Equal(t, 2, s.MaxAdditionalFailures(25, math.MaxInt, true))
	assert.Equal(t, 0, s.MaxAdditionalFailures(9, 1<<40, false))
	assert.Equal(t, MaxFailureBound, s.MaxAdditionalFailures(math.MaxInt, 1<<40, false))
}

func TestMaxFailuresCoveredHugeCosts(t *testing.T) {
	s := NewSchedule([]int{0, math.MaxInt}, 0)

	assert.Equal(t, 1, s.MaxFailuresCovered(math.MaxInt-1, true))
	assert.Equal(t, 2, s.MaxFailuresCovered(math.MaxInt, true))
}
