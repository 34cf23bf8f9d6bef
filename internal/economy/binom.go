package economy

import (
	"gonum.org/v1/gonum/stat/distuv"
)

// CumulativeProbability returns P(X <= maxFailures) for X ~ Binomial(trials, p):
// the chance of clearing trials risky levels without failing more than maxFailures times.
func CumulativeProbability(trials, maxFailures int, p float64) float64 {
	if maxFailures < 0 {
		return 0
	}
	trials = nonNegative(trials)
	if maxFailures >= trials {
		return 1
	}
	p = clampProb(p)
	switch p {
	case 0:
		return 1
	case 1:
		return 0 // every trial fails and maxFailures < trials
	}
	b := distuv.Binomial{N: float64(trials), P: p}
	return clampProb(b.CDF(float64(maxFailures)))
}

// PointProbability returns P(X = k) for X ~ Binomial(trials, p).
func PointProbability(trials, k int, p float64) float64 {
	trials = nonNegative(trials)
	if k < 0 || k > trials {
		return 0
	}
	p = clampProb(p)
	switch p {
	case 0:
		if k == 0 {
			return 1
		}
		return 0
	case 1:
		if k == trials {
			return 1
		}
		return 0
	}
	b := distuv.Binomial{N: float64(trials), P: p}
	return clampProb(b.Prob(float64(k)))
}

// ExpectedAdditionalCost is the expected ticket spend over the next trials risky
// levels for a player who has already failed failuresSoFar times.
func ExpectedAdditionalCost(trials, failuresSoFar int, p float64, s Schedule) float64 {
	trials = nonNegative(trials)
	failuresSoFar = nonNegative(failuresSoFar)

	expected := 0.0
	cost := 0 // cost of k additional failures, extended one failure per step
	for k := 0; k <= trials; k++ {
		if k > 0 {
			cost = addSat(cost, s.MarginalCost(addSat(failuresSoFar, k-1)))
		}
		expected += PointProbability(trials, k, p) * float64(cost)
	}
	return expected
}
