package economy

import (
	"math"

	"github.com/samber/lo"
)

// PlayerState is the caller-supplied position of a run in progress.
type PlayerState struct {
	CurrentLevel     int  `json:"current_level"`
	RemainingTickets int  `json:"remaining_tickets"`
	TotalFailures    int  `json:"total_failures"`
	IsExpressStart   bool `json:"is_express_start"`
}

// Result is the outcome of one Calculate call.
type Result struct {
	CurrentProbability     float64 `json:"current_probability"`
	RestartProbability     float64 `json:"restart_probability"`
	IsSafeLevel            bool    `json:"is_safe_level"`
	NextFailureCost        int     `json:"next_failure_cost"`
	ExpectedAdditionalCost float64 `json:"expected_additional_cost"`
}

// Trace carries the intermediate values of a calculation to a Hook.
type Trace struct {
	State                 PlayerState `json:"state"`
	RiskyTrials           int         `json:"risky_trials"`
	MaxAdditionalFailures int         `json:"max_additional_failures"`
	RestartStartLevel     int         `json:"restart_start_level"`
	RestartRiskyTrials    int         `json:"restart_risky_trials"`
	RestartMaxFailures    int         `json:"restart_max_failures"`
	Result                Result      `json:"result"`
}

// Hook observes calculations. It must not retain or mutate the Trace.
type Hook func(Trace)

// Engine evaluates player states against one immutable Config. It is safe for concurrent use.
type Engine struct {
	cfg      Config
	schedule Schedule
	hook     Hook
}

// NewEngine normalizes cfg and builds an engine over it.
func NewEngine(cfg Config) *Engine {
	cfg = cfg.normalize()
	return &Engine{cfg: cfg, schedule: cfg.Schedule()}
}

// WithHook returns a copy of the engine reporting to h. A nil h disables reporting.
func (e *Engine) WithHook(h Hook) *Engine {
	cp := *e
	cp.hook = h
	return &cp
}

// Config returns a copy of the active configuration.
func (e *Engine) Config() Config {
	cfg := e.cfg
	cfg.CostSchedule = append([]int(nil), e.cfg.CostSchedule...)
	return cfg
}

// Schedule returns the engine's cost schedule.
func (e *Engine) Schedule() Schedule { return e.schedule }

// freshTrials counts risky levels on a run started from scratch.
func (e *Engine) freshTrials(express bool) int {
	return CountRiskyTrials(e.startLevel(express), e.cfg.MaxLevel, e.cfg.CheckpointInterval)
}

func (e *Engine) startLevel(express bool) int {
	if express {
		return e.cfg.ExpressStartLevel
	}
	return 1
}

// Calculate evaluates a run in progress. Out-of-range inputs are clamped.
func (e *Engine) Calculate(st PlayerState) Result {
	st = sanitizeState(st)
	p := e.cfg.FailureProbability

	trials := CountRiskyTrials(st.CurrentLevel, e.cfg.MaxLevel, e.cfg.CheckpointInterval)
	maxAdditional := e.schedule.MaxAdditionalFailures(st.RemainingTickets, st.TotalFailures, st.IsExpressStart)

	restartLevel := e.startLevel(st.IsExpressStart)
	restartTrials := e.freshTrials(st.IsExpressStart)
	restartMax := e.schedule.MaxFailuresCovered(st.RemainingTickets, st.IsExpressStart)

	res := Result{
		CurrentProbability:     CumulativeProbability(trials, maxAdditional, p),
		RestartProbability:     CumulativeProbability(restartTrials, restartMax, p),
		IsSafeLevel:            IsSafeLevel(st.CurrentLevel, e.cfg.CheckpointInterval),
		NextFailureCost:        e.schedule.MarginalCost(st.TotalFailures),
		ExpectedAdditionalCost: ExpectedAdditionalCost(trials, st.TotalFailures, p, e.schedule),
	}

	if e.hook != nil {
		e.hook(Trace{
			State:                 st,
			RiskyTrials:           trials,
			MaxAdditionalFailures: maxAdditional,
			RestartStartLevel:     restartLevel,
			RestartRiskyTrials:    restartTrials,
			RestartMaxFailures:    restartMax,
			Result:                res,
		})
	}
	return res
}

// Summary returns the distribution of the additional cost for st.
func (e *Engine) Summary(st PlayerState) Stats {
	st = sanitizeState(st)
	trials := CountRiskyTrials(st.CurrentLevel, e.cfg.MaxLevel, e.cfg.CheckpointInterval)
	return CostSummary(trials, st.TotalFailures, e.cfg.FailureProbability, e.schedule)
}

// MaxFailuresCovered is the affordability ceiling of a fresh run with regularTickets.
func (e *Engine) MaxFailuresCovered(regularTickets int, express bool) int {
	return e.schedule.MaxFailuresCovered(regularTickets, express)
}

func sanitizeState(st PlayerState) PlayerState {
	st.CurrentLevel = lo.Clamp(st.CurrentLevel, 1, math.MaxInt)
	st.RemainingTickets = nonNegative(st.RemainingTickets)
	st.TotalFailures = nonNegative(st.TotalFailures)
	return st
}
