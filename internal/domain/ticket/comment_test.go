package ticket

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/shared/authorization"
)

func TestNewComment(t *testing.T) {
	tests := []struct {
		name     string
		ticketID uint
		authorID uint
		content  string
		wantErr  string
	}{
		{"valid", 1, 2, "Looking into it", ""},
		{"zero ticket", 0, 2, "x", "ticket ID is required"},
		{"zero author", 1, 0, "x", "author ID is required"},
		{"blank content", 1, 2, "  ", "content cannot be empty"},
		{"too long", 1, 2, strings.Repeat("x", 5001), "content exceeds maximum length"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewComment(tt.ticketID, tt.authorID, tt.content, false)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.content, c.Content())
			assert.False(t, c.IsInternal())
		})
	}
}

func TestComment_Visibility(t *testing.T) {
	admin := authorization.Actor{UserID: 1, Role: authorization.RoleAdmin}
	author := authorization.Actor{UserID: 2, Role: authorization.RoleUser}
	other := authorization.Actor{UserID: 3, Role: authorization.RoleUser}

	public, err := NewComment(1, 2, "public", false)
	require.NoError(t, err)
	internal, err := NewComment(1, 1, "internal", true)
	require.NoError(t, err)

	assert.True(t, public.IsVisibleTo(other))
	assert.False(t, internal.IsVisibleTo(author))
	assert.True(t, internal.IsVisibleTo(admin))

	assert.True(t, public.CanBeModifiedBy(author))
	assert.True(t, public.CanBeModifiedBy(admin))
	assert.False(t, public.CanBeModifiedBy(other))
}

func TestComment_Update(t *testing.T) {
	c, err := NewComment(1, 2, "first", false)
	require.NoError(t, err)
	require.NoError(t, c.SetID(8))

	require.NoError(t, c.UpdateContent("second"))
	assert.Equal(t, "second", c.Content())
	assert.Error(t, c.UpdateContent(""))

	c.SetInternal(true)
	assert.True(t, c.IsInternal())
	assert.Error(t, c.SetID(9))
}

func TestNewAttachment(t *testing.T) {
	a, err := NewAttachment(1, "1700000000000-abc123-report.pdf", "report.pdf", "application/pdf", 2048, "/uploads/1700000000000-abc123-report.pdf")
	require.NoError(t, err)
	assert.Equal(t, "report.pdf", a.OriginalName())
	assert.Equal(t, int64(2048), a.Size())
	require.NoError(t, a.SetID(1))

	_, err = NewAttachment(1, "f", "f", "text/plain", 0, "/uploads/f")
	assert.Error(t, err)
	_, err = NewAttachment(0, "f", "f", "text/plain", 1, "/uploads/f")
	assert.Error(t, err)
}
