package mappers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/ticket"
	tvo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/domain/user"
	uvo "helpdesk/internal/domain/user/valueobjects"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/authorization"
)

func TestUserMapper(t *testing.T) {
	m := NewUserMapper()
	email, err := uvo.NewEmail("admin@crm.com")
	require.NoError(t, err)
	u, err := user.NewUser(email, "hash", "Admin", "User", authorization.RoleAdmin)
	require.NoError(t, err)
	require.NoError(t, u.SetID(1))

	model := m.ToModel(u)
	assert.Equal(t, "ADMIN", model.Role)
	assert.True(t, model.IsActive)

	back, err := m.ToDomain(model)
	require.NoError(t, err)
	assert.Equal(t, u.Email(), back.Email())
	assert.Equal(t, u.CreatedAt(), back.CreatedAt())
	assert.Equal(t, u.Role(), back.Role())

	model.Role = "OWNER"
	_, err = m.ToDomain(model)
	assert.Error(t, err)
}

func TestTicketMapper_ResolvedAtAndAssignee(t *testing.T) {
	m := NewTicketMapper()
	resolved := int64(1_900_000_000_123)
	assignee := uint(4)
	model := &models.TicketModel{
		ID:          3,
		Title:       "Bug: Data Export Not Working",
		Description: "CSV export returns 500",
		Status:      "RESOLVED",
		Priority:    "HIGH",
		CreatorID:   2,
		AssigneeID:  &assignee,
		CreatedAt:   1_800_000_000_000,
		UpdatedAt:   1_900_000_000_123,
		ResolvedAt:  &resolved,
	}

	tk, err := m.ToDomain(model)
	require.NoError(t, err)
	assert.Equal(t, tvo.StatusResolved, tk.Status())
	require.NotNil(t, tk.ResolvedAt())
	assert.Equal(t, time.UnixMilli(resolved).UTC(), *tk.ResolvedAt())
	assert.Equal(t, *model, *m.ToModel(tk))
}

func TestTicketMapper_CommentAndAttachment(t *testing.T) {
	m := NewTicketMapper()

	c, err := ticket.NewComment(1, 2, "Investigating", true)
	require.NoError(t, err)
	require.NoError(t, c.SetID(5))
	cm := m.CommentToModel(c)
	assert.Equal(t, uint(2), cm.AuthorID)
	back, err := m.CommentToDomain(cm)
	require.NoError(t, err)
	assert.True(t, back.IsInternal())

	a, err := ticket.NewAttachment(1, "f.txt", "f.txt", "text/plain", 3, "/uploads/f.txt")
	require.NoError(t, err)
	require.NoError(t, a.SetID(6))
	am := m.AttachmentToModel(a)
	aBack, err := m.AttachmentToDomain(am)
	require.NoError(t, err)
	assert.Equal(t, a.URL(), aBack.URL())
	assert.Equal(t, a.CreatedAt(), aBack.CreatedAt())
}
