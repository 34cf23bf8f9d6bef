package economy

import "math"

// Stats summarizes the additional ticket cost of finishing a run.
type Stats struct {
	Mean   float64 `json:"mean"`
	Var    float64 `json:"var"`
	StdDev float64 `json:"std_dev"`
	P50    float64 `json:"p50"`
	P90    float64 `json:"p90"`
	P99    float64 `json:"p99"`
}

// CostSummary computes Stats of the additional cost over trials risky levels.
// Cost is non-decreasing in the failure count, so the cost quantiles are the
// costs at the failure-count quantiles.
func CostSummary(trials, failuresSoFar int, p float64, s Schedule) Stats {
	trials = nonNegative(trials)
	failuresSoFar = nonNegative(failuresSoFar)

	probs := make([]float64, trials+1)
	costs := make([]float64, trials+1)
	cost := 0
	for k := 0; k <= trials; k++ {
		if k > 0 {
			cost = addSat(cost, s.MarginalCost(addSat(failuresSoFar, k-1)))
		}
		probs[k] = PointProbability(trials, k, p)
		costs[k] = float64(cost)
	}

	var mean float64
	for k := range probs {
		mean += probs[k] * costs[k]
	}
	var acc float64
	for k := range probs {
		d := costs[k] - mean
		acc += probs[k] * d * d
	}

	// quantile returns the smallest cost whose cumulative probability reaches q.
	quantile := func(q float64) float64 {
		cum := 0.0
		for k := range probs {
			cum += probs[k]
			if cum >= q-1e-12 {
				return costs[k]
			}
		}
		return costs[len(costs)-1]
	}

	return Stats{
		Mean:   mean,
		Var:    acc,
		StdDev: math.Sqrt(acc),
		P50:    quantile(0.50),
		P90:    quantile(0.90),
		P99:    quantile(0.99),
	}
}
