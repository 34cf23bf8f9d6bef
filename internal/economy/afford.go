package economy

// MaxFailureBound caps every affordability count. A schedule whose plateau is
// zero makes failures free forever.
const MaxFailureBound = 1 << 16

// MaxFailuresCovered returns how many failures a fresh run can pay for with budget.
// A regular run pays the entry fee first; an express run starts with the fee waived.
func (s Schedule) MaxFailuresCovered(budget int, express bool) int {
	remaining := nonNegative(budget)
	if !express {
		if remaining < s.baseEntry || remaining < 1 {
			return 0
		}
		remaining -= s.baseEntry
	}
	return s.affordable(remaining, 0)
}

// MaxAdditionalFailures returns the largest f such that failures
// failuresSoFar .. failuresSoFar+f-1 fit in budget, measured against the
// cost already incurred. On an express run the already-incurred baseline
// excludes the waived entry fee, which leaves the fee owed up front.
func (s Schedule) MaxAdditionalFailures(budget, failuresSoFar int, express bool) int {
	budget = nonNegative(budget)
	failuresSoFar = nonNegative(failuresSoFar)

	owed := 0
	if express {
		owed = s.baseEntry
	}
	if owed > budget {
		return 0
	}
	return s.affordable(budget-owed, failuresSoFar)
}

// affordable counts consecutive failures, starting at occurrence index from,
// that fit in budget. The table before the plateau is walked entry by entry;
// failures on the plateau are counted by division.
func (s Schedule) affordable(budget, from int) int {
	f, spent := 0, 0
	for i := from; i < len(s.costs)-1; i++ {
		if s.costs[i] > budget-spent {
			return f
		}
		spent += s.costs[i]
		f++
	}

	plateau := s.Plateau()
	if plateau == 0 {
		return MaxFailureBound
	}
	extra := (budget - spent) / plateau
	if extra >= MaxFailureBound-f {
		return MaxFailureBound
	}
	return f + extra
}
