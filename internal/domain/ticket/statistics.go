package ticket

import vo "helpdesk/internal/domain/ticket/valueobjects"

// Statistics counts tickets per status. Total is always the sum of the buckets.
type Statistics struct {
	Total      int64
	Open       int64
	InProgress int64
	Resolved   int64
	Closed     int64
}

func NewStatistics(counts map[vo.TicketStatus]int64) Statistics {
	s := Statistics{
		Open:       counts[vo.StatusOpen],
		InProgress: counts[vo.StatusInProgress],
		Resolved:   counts[vo.StatusResolved],
		Closed:     counts[vo.StatusClosed],
	}
	s.Total = s.Open + s.InProgress + s.Resolved + s.Closed
	return s
}
