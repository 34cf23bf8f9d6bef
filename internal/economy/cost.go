package economy

import "math"

// Schedule maps the i-th failure (0-based) to its ticket cost. Indices past the end
// of the table pay the last entry. A regular run also pays BaseEntry once up front.
type Schedule struct {
	costs     []int
	baseEntry int
}

// NewSchedule copies costs; negative entries are treated as free.
func NewSchedule(costs []int, baseEntry int) Schedule {
	cp := make([]int, len(costs))
	for i, c := range costs {
		cp[i] = nonNegative(c)
	}
	return Schedule{costs: cp, baseEntry: nonNegative(baseEntry)}
}

// BaseEntry is the fee paid to start a regular run.
func (s Schedule) BaseEntry() int { return s.baseEntry }

// Plateau is the cost every failure pays once the table is exhausted.
func (s Schedule) Plateau() int {
	if len(s.costs) == 0 {
		return 0
	}
	return s.costs[len(s.costs)-1]
}

// MarginalCost returns the cost of the failure at the given occurrence index.
func (s Schedule) MarginalCost(failureIndex int) int {
	if len(s.costs) == 0 {
		return 0
	}
	idx := min(nonNegative(failureIndex), len(s.costs)-1)
	return s.costs[idx]
}

// TotalCost is the entry fee plus the cost of the first numFailures failures.
// numFailures <= 0 costs the entry fee alone. The result saturates at math.MaxInt.
func (s Schedule) TotalCost(numFailures int) int {
	return addSat(s.baseEntry, s.SpanCost(0, numFailures))
}

// SpanCost is the cost of k failures whose occurrence indices start at from.
// Only the table entries before the plateau are summed; the rest is k*Plateau.
func (s Schedule) SpanCost(from, k int) int {
	from = nonNegative(from)
	k = nonNegative(k)
	if len(s.costs) == 0 {
		return 0
	}
	total := 0
	for i := from; i < len(s.costs)-1 && k > 0; i++ {
		total = addSat(total, s.costs[i])
		k--
	}
	return addSat(total, mulSat(k, s.Plateau()))
}

// addSat adds two non-negative ints, saturating at math.MaxInt.
func addSat(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}

// mulSat multiplies two non-negative ints, saturating at math.MaxInt.
func mulSat(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	if a > math.MaxInt/b {
		return math.MaxInt
	}
	return a * b
}
