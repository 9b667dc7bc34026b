package cucumber

import "strings"

// NormalizeStatus lowercases and trims a runner status.
func NormalizeStatus(status string) string {
	return strings.ToLower(strings.TrimSpace(status))
}

// ScenarioStatus reduces step statuses to passed, failed or skipped.
// A failed step wins over a skipped one; anything else counts as passed.
func ScenarioStatus(steps []Step) string {
	hasSkipped := false
	for _, step := range steps {
		if step.Result == nil {
			continue
		}
		switch NormalizeStatus(step.Result.Status) {
		case StatusFailed:
			return StatusFailed
		case StatusSkipped:
			hasSkipped = true
		}
	}
	if hasSkipped {
		return StatusSkipped
	}
	return StatusPassed
}
