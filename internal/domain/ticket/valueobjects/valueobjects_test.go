package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTicketStatus(t *testing.T) {
	for _, s := range []string{"OPEN", "IN_PROGRESS", "RESOLVED", "CLOSED"} {
		status, err := NewTicketStatus(s)
		require.NoError(t, err, s)
		assert.Equal(t, s, status.String())
	}

	for _, s := range []string{"", "open", "PENDING", "REOPENED"} {
		_, err := NewTicketStatus(s)
		assert.Error(t, err, s)
	}
}

func TestTicketStatus_Predicates(t *testing.T) {
	assert.True(t, StatusOpen.IsActive())
	assert.True(t, StatusInProgress.IsActive())
	assert.False(t, StatusResolved.IsActive())
	assert.False(t, StatusClosed.IsActive())
	assert.True(t, StatusResolved.IsResolved())
	assert.True(t, StatusClosed.IsClosed())
	assert.Len(t, AllStatuses, 4)
}

func TestParsePriorityOrDefault(t *testing.T) {
	tests := []struct {
		in      string
		want    Priority
		wantErr bool
	}{
		{"", PriorityMedium, false},
		{"LOW", PriorityLow, false},
		{"URGENT", PriorityUrgent, false},
		{"urgent", "", true},
		{"CRITICAL", "", true},
	}

	for _, tt := range tests {
		got, err := ParsePriorityOrDefault(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}
