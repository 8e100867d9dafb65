package valueobjects

import "fmt"

type TicketStatus string

const (
	StatusOpen       TicketStatus = "OPEN"
	StatusInProgress TicketStatus = "IN_PROGRESS"
	StatusResolved   TicketStatus = "RESOLVED"
	StatusClosed     TicketStatus = "CLOSED"
)

// AllStatuses lists every status in lifecycle order.
var AllStatuses = []TicketStatus{StatusOpen, StatusInProgress, StatusResolved, StatusClosed}

var validTicketStatuses = map[TicketStatus]bool{
	StatusOpen:       true,
	StatusInProgress: true,
	StatusResolved:   true,
	StatusClosed:     true,
}

func (ts TicketStatus) String() string {
	return string(ts)
}

func (ts TicketStatus) IsValid() bool {
	return validTicketStatuses[ts]
}

func (ts TicketStatus) IsOpen() bool {
	return ts == StatusOpen
}

func (ts TicketStatus) IsInProgress() bool {
	return ts == StatusInProgress
}

func (ts TicketStatus) IsResolved() bool {
	return ts == StatusResolved
}

func (ts TicketStatus) IsClosed() bool {
	return ts == StatusClosed
}

// IsActive reports whether work on the ticket is still outstanding.
func (ts TicketStatus) IsActive() bool {
	return ts == StatusOpen || ts == StatusInProgress
}

func NewTicketStatus(s string) (TicketStatus, error) {
	ts := TicketStatus(s)
	if !ts.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return ts, nil
}
