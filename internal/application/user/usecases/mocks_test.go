package usecases

import (
	"context"
	"strings"
	"time"

	"helpdesk/internal/domain/user"
	vo "helpdesk/internal/domain/user/valueobjects"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type mockUserRepository struct {
	CreateFunc        func(ctx context.Context, u *user.User) error
	UpdateFunc        func(ctx context.Context, u *user.User) error
	GetByIDFunc       func(ctx context.Context, id uint) (*user.User, error)
	GetByIDsFunc      func(ctx context.Context, ids []uint) ([]*user.User, error)
	GetByEmailFunc    func(ctx context.Context, email string) (*user.User, error)
	ExistsByEmailFunc func(ctx context.Context, email string) (bool, error)
	ListFunc          func(ctx context.Context) ([]*user.User, error)
	TicketCountsFunc  func(ctx context.Context, ids []uint) (map[uint]user.TicketCounts, error)
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	return u.SetID(100)
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.NewNotFoundError("User not found")
}

func (m *mockUserRepository) GetByIDs(ctx context.Context, ids []uint) ([]*user.User, error) {
	if m.GetByIDsFunc != nil {
		return m.GetByIDsFunc(ctx, ids)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, errors.NewNotFoundError("User not found")
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.ExistsByEmailFunc != nil {
		return m.ExistsByEmailFunc(ctx, email)
	}
	return false, nil
}

func (m *mockUserRepository) List(ctx context.Context) ([]*user.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockUserRepository) TicketCounts(ctx context.Context, ids []uint) (map[uint]user.TicketCounts, error) {
	if m.TicketCountsFunc != nil {
		return m.TicketCountsFunc(ctx, ids)
	}
	return map[uint]user.TicketCounts{}, nil
}

type mockHasher struct{}

func (mockHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (mockHasher) Verify(password, hash string) error {
	if !strings.HasPrefix(hash, "hashed:") || strings.TrimPrefix(hash, "hashed:") != password {
		return errors.NewUnauthorizedError("mismatch")
	}
	return nil
}

func newTestUser(id uint, email string, role authorization.UserRole) *user.User {
	addr, err := vo.NewEmail(email)
	if err != nil {
		panic(err)
	}
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	u, err := user.ReconstructUser(id, addr, "hashed:secret", "Test", "User", role, true, now, now)
	if err != nil {
		panic(err)
	}
	return u
}

func newTestLogger() logger.Interface {
	return logger.NewLogger()
}

func adminActor(id uint) authorization.Actor {
	return authorization.Actor{UserID: id, Role: authorization.RoleAdmin}
}

func userActor(id uint) authorization.Actor {
	return authorization.Actor{UserID: id, Role: authorization.RoleUser}
}

func ptr[T any](v T) *T {
	return &v
}
