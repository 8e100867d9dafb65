package valueobjects

import "fmt"

type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
	PriorityUrgent Priority = "URGENT"
)

// DefaultPriority applies when a ticket is opened without one.
const DefaultPriority = PriorityMedium

var validPriorities = map[Priority]bool{
	PriorityLow:    true,
	PriorityMedium: true,
	PriorityHigh:   true,
	PriorityUrgent: true,
}

func (p Priority) String() string {
	return string(p)
}

func (p Priority) IsValid() bool {
	return validPriorities[p]
}

func NewPriority(s string) (Priority, error) {
	p := Priority(s)
	if !p.IsValid() {
		return "", fmt.Errorf("invalid priority: %s", s)
	}
	return p, nil
}

// ParsePriorityOrDefault returns DefaultPriority for an empty value.
func ParsePriorityOrDefault(s string) (Priority, error) {
	if s == "" {
		return DefaultPriority, nil
	}
	return NewPriority(s)
}
