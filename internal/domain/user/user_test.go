package user

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "helpdesk/internal/domain/user/valueobjects"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/biztime"
)

func validEmail(t *testing.T, addr string) vo.Email {
	t.Helper()
	email, err := vo.NewEmail(addr)
	require.NoError(t, err)
	return email
}

func newTestUser(t *testing.T) *User {
	t.Helper()
	u, err := NewUser(validEmail(t, "jane@crm.com"), "hash", "Jane", "Doe", "")
	require.NoError(t, err)
	require.NoError(t, u.SetID(7))
	return u
}

func TestNewUser(t *testing.T) {
	t.Run("defaults to active USER", func(t *testing.T) {
		u, err := NewUser(validEmail(t, "Jane@CRM.com"), "hash", "  Jane ", "Doe", "")
		require.NoError(t, err)

		assert.Equal(t, "jane@crm.com", u.Email().String())
		assert.Equal(t, "Jane", u.FirstName())
		assert.Equal(t, authorization.RoleUser, u.Role())
		assert.True(t, u.IsActive())
		assert.Equal(t, "Jane Doe", u.FullName())
		assert.False(t, u.CreatedAt().IsZero())
	})

	t.Run("keeps explicit admin role", func(t *testing.T) {
		u, err := NewUser(validEmail(t, "a@crm.com"), "hash", "A", "B", authorization.RoleAdmin)
		require.NoError(t, err)
		assert.True(t, u.IsAdmin())
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		_, err := NewUser(validEmail(t, "a@crm.com"), "", "A", "B", "")
		assert.Error(t, err)

		_, err = NewUser(validEmail(t, "a@crm.com"), "hash", " ", "B", "")
		assert.Error(t, err)

		_, err = NewUser(validEmail(t, "a@crm.com"), "hash", "A", "", "")
		assert.Error(t, err)
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		_, err := NewUser(validEmail(t, "a@crm.com"), "hash", "A", "B", "ROOT")
		assert.Error(t, err)
	})
}

func TestUser_SetID(t *testing.T) {
	u, err := NewUser(validEmail(t, "a@crm.com"), "hash", "A", "B", "")
	require.NoError(t, err)

	assert.Error(t, u.SetID(0))
	require.NoError(t, u.SetID(3))
	assert.Error(t, u.SetID(4))
	assert.Equal(t, uint(3), u.ID())
	assert.Equal(t, authorization.Actor{UserID: 3, Role: authorization.RoleUser}, u.Actor())
}

func TestUser_Mutations(t *testing.T) {
	fixed := time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("UpdateProfile applies only supplied fields", func(t *testing.T) {
		u := newTestUser(t)
		restore := biztime.SetClock(func() time.Time { return fixed })
		defer restore()

		last := "Smith"
		require.NoError(t, u.UpdateProfile(nil, &last))
		assert.Equal(t, "Jane", u.FirstName())
		assert.Equal(t, "Smith", u.LastName())
		assert.Equal(t, fixed, u.UpdatedAt())

		empty := ""
		assert.Error(t, u.UpdateProfile(&empty, nil))
		assert.Equal(t, "Jane", u.FirstName())
	})

	t.Run("ChangeRole validates", func(t *testing.T) {
		u := newTestUser(t)
		require.NoError(t, u.ChangeRole(authorization.RoleAdmin))
		assert.True(t, u.IsAdmin())
		assert.Error(t, u.ChangeRole("OWNER"))
	})

	t.Run("Deactivate", func(t *testing.T) {
		u := newTestUser(t)
		u.Deactivate()
		assert.False(t, u.IsActive())
		u.SetActive(true)
		assert.True(t, u.IsActive())
	})

	t.Run("ChangeEmail and password", func(t *testing.T) {
		u := newTestUser(t)
		u.ChangeEmail(validEmail(t, "new@crm.com"))
		assert.Equal(t, "new@crm.com", u.Email().String())

		assert.Error(t, u.ChangePasswordHash(""))
		require.NoError(t, u.ChangePasswordHash("other"))
		assert.Equal(t, "other", u.PasswordHash())
	})
}

func TestReconstructUser(t *testing.T) {
	now := biztime.NowUTC()
	_, err := ReconstructUser(0, validEmail(t, "a@crm.com"), "h", "A", "B", authorization.RoleUser, true, now, now)
	assert.Error(t, err)

	u, err := ReconstructUser(9, validEmail(t, "a@crm.com"), "h", "A", "B", authorization.RoleAdmin, false, now, now)
	require.NoError(t, err)
	assert.Equal(t, uint(9), u.ID())
	assert.False(t, u.IsActive())
	assert.True(t, u.IsAdmin())
}
