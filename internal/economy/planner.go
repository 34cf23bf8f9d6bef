package economy

import "sort"

// Plan is the smallest ticket budget reaching a target success probability on a fresh run.
type Plan struct {
	TicketsRequired int     `json:"tickets_required"`
	FailuresCovered int     `json:"failures_covered"`
	RiskyTrials     int     `json:"risky_trials"`
	Probability     float64 `json:"probability"`
}

// TicketsForTarget finds the fewest tickets whose fresh-start success probability
// is at least target. Success probability only grows with the failures covered,
// so the failure count is found by binary search.
func (e *Engine) TicketsForTarget(target float64, express bool) Plan {
	target = clampProb(target)
	trials := e.freshTrials(express)
	p := e.cfg.FailureProbability

	failures := trials
	// Near the top the CDF rounds to 1 before every trial is covered.
	if target < 1 {
		failures = sort.Search(trials, func(f int) bool {
			return CumulativeProbability(trials, f, p) >= target
		})
	}

	tickets := e.schedule.SpanCost(0, failures)
	if !express {
		tickets = max(addSat(tickets, e.schedule.BaseEntry()), 1)
	}
	return Plan{
		TicketsRequired: tickets,
		FailuresCovered: failures,
		RiskyTrials:     trials,
		Probability:     CumulativeProbability(trials, failures, p),
	}
}

// TicketsForCertainty is the budget that covers a failure on every risky level.
func (e *Engine) TicketsForCertainty(express bool) Plan {
	return e.TicketsForTarget(1, express)
}
