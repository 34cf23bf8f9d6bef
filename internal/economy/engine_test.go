package economy

import (
	"math"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateMidRun(t *testing.T) {
	var traces []Trace
	e := NewEngine(DefaultConfig()).WithHook(func(tr Trace) { traces = append(traces, tr) })

	res := e.Calculate(PlayerState{CurrentLevel: 20, RemainingTickets: 10, TotalFailures: 2})

	assert.True(t, res.IsSafeLevel)
	assert.Equal(t, 2, res.NextFailureCost)
	// 24 risky levels left; failures #2 and #3 (2+4 tickets) fit in 10, #4 does not.
	assert.InDelta(t, CumulativeProbability(24, 2, 0.25), res.CurrentProbability, 1e-12)
	// a fresh regular run with 10 tickets covers 4 failures over 40 risky levels.
	assert.InDelta(t, CumulativeProbability(40, 4, 0.25), res.RestartProbability, 1e-12)
	assert.InDelta(t, ExpectedAdditionalCost(24, 2, 0.25, e.Schedule()), res.ExpectedAdditionalCost, 1e-12)

	require.Len(t, traces, 1)
	tr := traces[0]
	assert.Equal(t, 24, tr.RiskyTrials)
	assert.Equal(t, 2, tr.MaxAdditionalFailures)
	assert.Equal(t, 1, tr.RestartStartLevel)
	assert.Equal(t, 40, tr.RestartRiskyTrials)
	assert.Equal(t, 4, tr.RestartMaxFailures)
	assert.Equal(t, res, tr.Result)
}

func TestCalculateExpressRestart(t *testing.T) {
	var got Trace
	e := NewEngine(DefaultConfig()).WithHook(func(tr Trace) { got = tr })

	e.Calculate(PlayerState{CurrentLevel: 23, RemainingTickets: 3, TotalFailures: 0, IsExpressStart: true})

	assert.Equal(t, 20, got.RestartStartLevel)
	assert.Equal(t, 24, got.RestartRiskyTrials)
	assert.Equal(t, 3, got.RestartMaxFailures, "express restart waives the entry fee")
	assert.Equal(t, 2, got.MaxAdditionalFailures)
}

func TestCalculateClampsInvalidInput(t *testing.T) {
	e := NewEngine(DefaultConfig())

	bad := e.Calculate(PlayerState{CurrentLevel: -3, RemainingTickets: -5, TotalFailures: -1})
	good := e.Calculate(PlayerState{CurrentLevel: 1})

	assert.Equal(t, good, bad)
	assert.Equal(t, 0, bad.NextFailureCost)
	assert.GreaterOrEqual(t, bad.CurrentProbability, 0.0)
	assert.LessOrEqual(t, bad.CurrentProbability, 1.0)
}

func TestCalculatePastFinalLevel(t *testing.T) {
	e := NewEngine(DefaultConfig())
	res := e.Calculate(PlayerState{CurrentLevel: 51, RemainingTickets: 0, TotalFailures: 9})

	assert.Equal(t, 1.0, res.CurrentProbability)
	assert.Equal(t, 0.0, res.ExpectedAdditionalCost)
	assert.Equal(t, 10, res.NextFailureCost)
}

func TestCalculateDegenerateConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FailureProbability = math.NaN()
	cfg.CheckpointInterval = -5
	cfg.MaxLevel = -1
	e := NewEngine(cfg)

	res := e.Calculate(PlayerState{CurrentLevel: 10, RemainingTickets: 0})
	assert.Equal(t, 1.0, res.CurrentProbability)
	assert.False(t, res.IsSafeLevel)
	assert.Equal(t, 0.0, e.Config().FailureProbability)
	assert.Equal(t, 0, e.Config().MaxLevel)
}

func TestCalculateAlternateSchedule(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CostSchedule = []int{3}
	cfg.FailureProbability = 0.5
	cfg.MaxLevel = 4
	cfg.CheckpointInterval = 0
	e := NewEngine(cfg)

	res := e.Calculate(PlayerState{CurrentLevel: 3, RemainingTickets: 3})

	// two risky levels left, one failure affordable
	assert.InDelta(t, 0.75, res.CurrentProbability, 1e-12)
	assert.InDelta(t, 0.5*3+0.25*6, res.ExpectedAdditionalCost, 1e-12)
	assert.Equal(t, 3, res.NextFailureCost)
}

func TestEngineConfigIsACopy(t *testing.T) {
	e := NewEngine(DefaultConfig())
	cfg := e.Config()
	cfg.CostSchedule[5] = 1000

	assert.Equal(t, 10, e.Schedule().MarginalCost(5))
	assert.Equal(t, 10, e.Config().CostSchedule[5])
}

func TestCalculateConcurrent(t *testing.T) {
	e := NewEngine(DefaultConfig())
	want := e.Calculate(PlayerState{CurrentLevel: 7, RemainingTickets: 40, TotalFailures: 3})

	var wg sync.WaitGroup
	results := make([]Result, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = e.Calculate(PlayerState{CurrentLevel: 7, RemainingTickets: 40, TotalFailures: 3})
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, want, r)
	}
}

func TestSummary(t *testing.T) {
	e := NewEngine(DefaultConfig())
	st := PlayerState{CurrentLevel: 30, RemainingTickets: 12, TotalFailures: 4}

	sum := e.Summary(st)
	assert.InDelta(t, e.Calculate(st).ExpectedAdditionalCost, sum.Mean, 1e-9)
}

func TestEngineMaxFailuresCovered(t *testing.T) {
	e := NewEngine(DefaultConfig())
	assert.Equal(t, 2, e.MaxFailuresCovered(3, false))
	assert.Equal(t, 3, e.MaxFailuresCovered(3, true))
}

func TestCalculateHugeFailureCountIsBounded(t *testing.T) {
	e := NewEngine(DefaultConfig())

	done := make(chan Result, 1)
	go func() {
		done <- e.Calculate(PlayerState{CurrentLevel: 1, RemainingTickets: 10, TotalFailures: math.MaxInt})
	}()

	select {
	case res := <-done:
		assert.Equal(t, 10, res.NextFailureCost)
		// every failure costs the plateau: 10 * E[failures over 40 risky levels]
		assert.InDelta(t, 10*40*0.25, res.ExpectedAdditionalCost, 1e-9)
		assert.InDelta(t, CumulativeProbability(40, 1, 0.25), res.CurrentProbability, 1e-12)
	case <-time.After(time.Second):
		t.Fatal("Calculate did not finish within a second")
	}
}
