package economy

// IsSafeLevel reports whether level is a checkpoint. With interval <= 0 there are no checkpoints.
func IsSafeLevel(level, checkpointInterval int) bool {
	if checkpointInterval <= 0 {
		return false
	}
	return level%checkpointInterval == 0
}

// CountRiskyTrials counts the levels in [start, end] that are not checkpoints.
func CountRiskyTrials(start, end, checkpointInterval int) int {
	if end < start {
		return 0
	}
	total := end - start + 1
	if checkpointInterval <= 0 {
		return total
	}
	safe := floorDiv(end, checkpointInterval) - floorDiv(start-1, checkpointInterval)
	return total - safe
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
