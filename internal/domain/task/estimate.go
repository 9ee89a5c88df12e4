package task

import (
	"math"
	"strings"
)

// Estimate heuristic constants. The numbers come from the product's original
// estimation rules and are intentionally coarse.
const (
	baseEstimateHours = 2.0
	minEstimateHours  = 0.25

	highPriorityFactor = 1.5
	lowPriorityFactor  = 0.75
	inProgressFactor   = 0.7

	wordsPerEstimateStep = 50
	hoursPerEstimateStep = 0.5
)

// EstimateHours returns a deterministic effort estimate in hours.
//
// Starting from a 2.0 hour base: HIGH priority scales by 1.5, LOW by 0.75.
// Each full 50 words of description adds 0.5 hours. IN_PROGRESS tasks scale
// by 0.7 (partially complete); DONE tasks are forced to zero. The result is
// floored at 0.25 hours, so a DONE task still estimates 0.25.
func (t *Task) EstimateHours() float64 {
	hours := baseEstimateHours

	switch t.Priority {
	case PriorityHigh:
		hours *= highPriorityFactor
	case PriorityLow:
		hours *= lowPriorityFactor
	}

	if t.Description != nil && strings.TrimSpace(*t.Description) != "" {
		words := len(strings.Fields(*t.Description))
		hours += float64(words/wordsPerEstimateStep) * hoursPerEstimateStep
	}

	switch t.Status {
	case StatusInProgress:
		hours *= inProgressFactor
	case StatusDone:
		hours = 0
	}

	return math.Max(minEstimateHours, hours)
}
