package ticket

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/biztime"
)

// newValidTicket creates a ticket owned by user 1.
func newValidTicket(t *testing.T) *Ticket {
	t.Helper()
	tk, err := NewTicket("Printer jammed", "Paper stuck in tray 2", vo.PriorityHigh, 1)
	require.NoError(t, err)
	require.NoError(t, tk.SetID(10))
	return tk
}

func uintPtr(v uint) *uint { return &v }

func TestNewTicket(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		tk, err := NewTicket("  Login Issues ", "Cannot sign in", "", 5)
		require.NoError(t, err)

		assert.Equal(t, "Login Issues", tk.Title())
		assert.Equal(t, vo.StatusOpen, tk.Status())
		assert.Equal(t, vo.PriorityMedium, tk.Priority())
		assert.Equal(t, uint(5), tk.CreatorID())
		assert.Nil(t, tk.AssigneeID())
		assert.Nil(t, tk.ResolvedAt())
		assert.Equal(t, tk.CreatedAt(), tk.UpdatedAt())
	})

	tests := []struct {
		name     string
		title    string
		desc     string
		priority vo.Priority
		creator  uint
	}{
		{"blank title", "   ", "desc", vo.PriorityLow, 1},
		{"title too long", strings.Repeat("a", 201), "desc", vo.PriorityLow, 1},
		{"blank description", "title", " \n ", vo.PriorityLow, 1},
		{"invalid priority", "title", "desc", "CRITICAL", 1},
		{"missing creator", "title", "desc", vo.PriorityLow, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTicket(tt.title, tt.desc, tt.priority, tt.creator)
			assert.Error(t, err)
		})
	}
}

func TestTicket_ChangeStatus_ResolvedAt(t *testing.T) {
	tk := newValidTicket(t)
	t1 := time.Date(2030, 5, 1, 12, 0, 0, 0, time.UTC)
	restore := biztime.SetClock(func() time.Time { return t1 })
	defer restore()

	changed, err := tk.ChangeStatus(vo.StatusInProgress)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Nil(t, tk.ResolvedAt())

	changed, err = tk.ChangeStatus(vo.StatusResolved)
	require.NoError(t, err)
	assert.True(t, changed)
	require.NotNil(t, tk.ResolvedAt())
	assert.Equal(t, t1, *tk.ResolvedAt())

	// closing keeps the resolution time
	_, err = tk.ChangeStatus(vo.StatusClosed)
	require.NoError(t, err)
	require.NotNil(t, tk.ResolvedAt())
	assert.Equal(t, t1, *tk.ResolvedAt())

	_, err = tk.ChangeStatus(vo.StatusOpen)
	require.NoError(t, err)
	assert.Nil(t, tk.ResolvedAt())

	changed, err = tk.ChangeStatus(vo.StatusOpen)
	require.NoError(t, err)
	assert.False(t, changed)

	_, err = tk.ChangeStatus("REOPENED")
	assert.Error(t, err)
}

func TestTicket_Assign(t *testing.T) {
	tk := newValidTicket(t)

	changed, err := tk.Assign(uintPtr(3))
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, uint(3), *tk.AssigneeID())

	changed, err = tk.Assign(uintPtr(3))
	require.NoError(t, err)
	assert.False(t, changed)

	changed, err = tk.Assign(nil)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Nil(t, tk.AssigneeID())

	_, err = tk.Assign(uintPtr(0))
	assert.Error(t, err)
}

func TestTicket_UpdateDetails(t *testing.T) {
	tk := newValidTicket(t)

	title := "Printer still jammed"
	require.NoError(t, tk.UpdateDetails(&title, nil))
	assert.Equal(t, title, tk.Title())
	assert.Equal(t, "Paper stuck in tray 2", tk.Description())

	blank := " "
	assert.Error(t, tk.UpdateDetails(nil, &blank))
	assert.Equal(t, "Paper stuck in tray 2", tk.Description())
}

func TestTicket_ChangePriority(t *testing.T) {
	tk := newValidTicket(t)
	require.NoError(t, tk.ChangePriority(vo.PriorityUrgent))
	assert.Equal(t, vo.PriorityUrgent, tk.Priority())
	assert.Error(t, tk.ChangePriority("low"))
}

func TestTicket_CanBeAccessedBy(t *testing.T) {
	tk := newValidTicket(t)

	assert.True(t, tk.CanBeAccessedBy(authorization.Actor{UserID: 1, Role: authorization.RoleUser}))
	assert.False(t, tk.CanBeAccessedBy(authorization.Actor{UserID: 2, Role: authorization.RoleUser}))
	assert.True(t, tk.CanBeAccessedBy(authorization.Actor{UserID: 2, Role: authorization.RoleAdmin}))
	assert.True(t, tk.IsOwnedBy(1))
}

func TestReconstructTicket(t *testing.T) {
	now := biztime.NowUTC()
	tk, err := ReconstructTicket(4, "t", "d", vo.StatusResolved, vo.PriorityLow, 2, uintPtr(9), now, now, &now)
	require.NoError(t, err)
	assert.Equal(t, uint(4), tk.ID())
	assert.Equal(t, uint(9), *tk.AssigneeID())
	assert.Error(t, tk.SetID(5))

	_, err = ReconstructTicket(0, "t", "d", vo.StatusOpen, vo.PriorityLow, 2, nil, now, now, nil)
	assert.Error(t, err)
	_, err = ReconstructTicket(1, "t", "d", "NEW", vo.PriorityLow, 2, nil, now, now, nil)
	assert.Error(t, err)
}

func TestNewStatistics(t *testing.T) {
	stats := NewStatistics(map[vo.TicketStatus]int64{
		vo.StatusOpen:     3,
		vo.StatusResolved: 2,
		vo.StatusClosed:   1,
	})

	assert.Equal(t, Statistics{Total: 6, Open: 3, InProgress: 0, Resolved: 2, Closed: 1}, stats)
	assert.Equal(t, Statistics{}, NewStatistics(nil))
}
