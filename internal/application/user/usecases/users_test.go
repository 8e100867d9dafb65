package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
)

func TestListUsersUseCase(t *testing.T) {
	repo := &mockUserRepository{
		ListFunc: func(ctx context.Context) ([]*user.User, error) {
			return []*user.User{
				newTestUser(2, "b@example.com", authorization.RoleUser),
				newTestUser(1, "a@example.com", authorization.RoleAdmin),
			}, nil
		},
		TicketCountsFunc: func(ctx context.Context, ids []uint) (map[uint]user.TicketCounts, error) {
			assert.Equal(t, []uint{2, 1}, ids)
			return map[uint]user.TicketCounts{2: {Created: 3, Assigned: 0}}, nil
		},
	}
	uc := NewListUsersUseCase(repo, newTestLogger())

	t.Run("admin sees every user with counts", func(t *testing.T) {
		result, err := uc.Execute(t.Context(), ListUsersQuery{Actor: adminActor(1)})
		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, "b@example.com", result[0].Email)
		assert.EqualValues(t, 3, result[0].Count.CreatedTickets)
		assert.EqualValues(t, 0, result[1].Count.CreatedTickets)
	})

	t.Run("user is forbidden", func(t *testing.T) {
		_, err := uc.Execute(t.Context(), ListUsersQuery{Actor: userActor(2)})
		assert.True(t, errors.IsForbiddenError(err))
	})
}

func TestCreateUserUseCase(t *testing.T) {
	t.Run("defaults role to USER and hashes password", func(t *testing.T) {
		var saved *user.User
		repo := &mockUserRepository{
			CreateFunc: func(ctx context.Context, u *user.User) error {
				saved = u
				return u.SetID(7)
			},
		}
		uc := NewCreateUserUseCase(repo, mockHasher{}, newTestLogger())

		result, err := uc.Execute(t.Context(), CreateUserCommand{
			Actor:     adminActor(1),
			Email:     "  New@Example.com ",
			Password:  "secret1",
			FirstName: "New",
			LastName:  "Person",
		})
		require.NoError(t, err)
		assert.Equal(t, uint(7), result.ID)
		assert.Equal(t, "new@example.com", result.Email)
		assert.Equal(t, "USER", result.Role)
		assert.Equal(t, "hashed:secret1", saved.PasswordHash())
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		repo := &mockUserRepository{
			ExistsByEmailFunc: func(ctx context.Context, email string) (bool, error) { return true, nil },
		}
		uc := NewCreateUserUseCase(repo, mockHasher{}, newTestLogger())
		_, err := uc.Execute(t.Context(), CreateUserCommand{
			Actor: adminActor(1), Email: "a@example.com", Password: "secret1", FirstName: "A", LastName: "B",
		})
		require.True(t, errors.IsConflictError(err))
		assert.Equal(t, "User with this email already exists", errors.GetAppError(err).Message)
	})

	t.Run("rejects short password and bad role", func(t *testing.T) {
		uc := NewCreateUserUseCase(&mockUserRepository{}, mockHasher{}, newTestLogger())
		_, err := uc.Execute(t.Context(), CreateUserCommand{
			Actor: adminActor(1), Email: "a@example.com", Password: "12345", FirstName: "A", LastName: "B",
		})
		assert.True(t, errors.IsValidationError(err))

		_, err = uc.Execute(t.Context(), CreateUserCommand{
			Actor: adminActor(1), Email: "a@example.com", Password: "123456", FirstName: "A", LastName: "B", Role: "ROOT",
		})
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("non-admin is forbidden", func(t *testing.T) {
		uc := NewCreateUserUseCase(&mockUserRepository{}, mockHasher{}, newTestLogger())
		_, err := uc.Execute(t.Context(), CreateUserCommand{Actor: userActor(2)})
		assert.True(t, errors.IsForbiddenError(err))
	})
}

func TestGetUserUseCase(t *testing.T) {
	lookups := 0
	repo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			lookups++
			if id == 2 {
				return newTestUser(2, "b@example.com", authorization.RoleUser), nil
			}
			return nil, errors.NewNotFoundError("User not found")
		},
	}
	uc := NewGetUserUseCase(repo, newTestLogger())

	result, err := uc.Execute(t.Context(), GetUserQuery{Actor: userActor(2), UserID: 2})
	require.NoError(t, err)
	assert.Equal(t, uint(2), result.ID)

	_, err = uc.Execute(t.Context(), GetUserQuery{Actor: userActor(2), UserID: 999})
	assert.True(t, errors.IsForbiddenError(err), "forbidden is reported before not found")
	assert.Equal(t, 1, lookups)

	_, err = uc.Execute(t.Context(), GetUserQuery{Actor: adminActor(1), UserID: 999})
	assert.True(t, errors.IsNotFoundError(err))
}

func TestUpdateUserUseCase(t *testing.T) {
	newRepo := func(target *user.User, emailTaken bool) (*mockUserRepository, *int) {
		updates := 0
		return &mockUserRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) { return target, nil },
			ExistsByEmailFunc: func(ctx context.Context, email string) (bool, error) {
				return emailTaken, nil
			},
			UpdateFunc: func(ctx context.Context, u *user.User) error {
				updates++
				return nil
			},
		}, &updates
	}

	t.Run("user cannot change own role or active flag", func(t *testing.T) {
		target := newTestUser(2, "b@example.com", authorization.RoleUser)
		repo, updates := newRepo(target, false)
		uc := NewUpdateUserUseCase(repo, mockHasher{}, newTestLogger())

		result, err := uc.Execute(t.Context(), UpdateUserCommand{
			Actor:     userActor(2),
			UserID:    2,
			FirstName: ptr("Bea"),
			Role:      ptr("ADMIN"),
			IsActive:  ptr(false),
		})
		require.NoError(t, err)
		assert.Equal(t, "Bea", result.FirstName)
		assert.Equal(t, "USER", result.Role)
		assert.True(t, result.IsActive)
		assert.Equal(t, 1, *updates)
	})

	t.Run("admin can change role and password", func(t *testing.T) {
		target := newTestUser(2, "b@example.com", authorization.RoleUser)
		repo, _ := newRepo(target, false)
		uc := NewUpdateUserUseCase(repo, mockHasher{}, newTestLogger())

		result, err := uc.Execute(t.Context(), UpdateUserCommand{
			Actor:    adminActor(1),
			UserID:   2,
			Role:     ptr("ADMIN"),
			Password: ptr("newpass"),
		})
		require.NoError(t, err)
		assert.Equal(t, "ADMIN", result.Role)
		assert.Equal(t, "hashed:newpass", target.PasswordHash())
	})

	t.Run("admin cannot deactivate self through update", func(t *testing.T) {
		target := newTestUser(1, "admin@example.com", authorization.RoleAdmin)
		repo, updates := newRepo(target, false)
		uc := NewUpdateUserUseCase(repo, mockHasher{}, newTestLogger())

		_, err := uc.Execute(t.Context(), UpdateUserCommand{Actor: adminActor(1), UserID: 1, IsActive: ptr(false)})
		require.Error(t, err)
		assert.Equal(t, 400, errors.GetAppError(err).Code)
		assert.True(t, target.IsActive())
		assert.Zero(t, *updates)

		result, err := uc.Execute(t.Context(), UpdateUserCommand{Actor: adminActor(1), UserID: 1, IsActive: ptr(true)})
		require.NoError(t, err)
		assert.True(t, result.IsActive)
	})

	t.Run("email already in use", func(t *testing.T) {
		target := newTestUser(2, "b@example.com", authorization.RoleUser)
		repo, updates := newRepo(target, true)
		uc := NewUpdateUserUseCase(repo, mockHasher{}, newTestLogger())

		_, err := uc.Execute(t.Context(), UpdateUserCommand{Actor: userActor(2), UserID: 2, Email: ptr("taken@example.com")})
		require.True(t, errors.IsConflictError(err))
		assert.Equal(t, "Email already in use", errors.GetAppError(err).Message)
		assert.Zero(t, *updates)
	})

	t.Run("same email in different case is not a conflict", func(t *testing.T) {
		target := newTestUser(2, "b@example.com", authorization.RoleUser)
		repo, _ := newRepo(target, true)
		uc := NewUpdateUserUseCase(repo, mockHasher{}, newTestLogger())

		_, err := uc.Execute(t.Context(), UpdateUserCommand{Actor: userActor(2), UserID: 2, Email: ptr("B@Example.com")})
		assert.NoError(t, err)
	})

	t.Run("other user's profile is forbidden", func(t *testing.T) {
		uc := NewUpdateUserUseCase(&mockUserRepository{}, mockHasher{}, newTestLogger())
		_, err := uc.Execute(t.Context(), UpdateUserCommand{Actor: userActor(2), UserID: 3})
		assert.True(t, errors.IsForbiddenError(err))
	})
}

func TestDeactivateUserUseCase(t *testing.T) {
	target := newTestUser(2, "b@example.com", authorization.RoleUser)
	repo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) { return target, nil },
	}
	uc := NewDeactivateUserUseCase(repo, newTestLogger())

	_, err := uc.Execute(t.Context(), DeactivateUserCommand{Actor: userActor(2), UserID: 2})
	assert.True(t, errors.IsForbiddenError(err))

	_, err = uc.Execute(t.Context(), DeactivateUserCommand{Actor: adminActor(1), UserID: 1})
	require.Error(t, err)
	assert.Equal(t, 400, errors.GetAppError(err).Code)

	result, err := uc.Execute(t.Context(), DeactivateUserCommand{Actor: adminActor(1), UserID: 2})
	require.NoError(t, err)
	assert.False(t, result.IsActive)
	assert.False(t, target.IsActive())
}
