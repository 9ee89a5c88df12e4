package task

// Priority represents the urgency of a Task. The empty string means no
// priority has been assigned.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

// IsValid returns true if the priority is one of the defined constants.
// The empty (unset) value is not valid; callers that allow unset priorities
// should check for "" first.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (p Priority) String() string {
	return string(p)
}
