package usecases

import (
	"context"
	"time"

	"helpdesk/internal/domain/user"
	vo "helpdesk/internal/domain/user/valueobjects"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
)

// mockUserRepository keeps users in memory keyed by id.
type mockUserRepository struct {
	users  map[uint]*user.User
	nextID uint
	err    error
}

func newMockUserRepository(users ...*user.User) *mockUserRepository {
	m := &mockUserRepository{users: map[uint]*user.User{}, nextID: 100}
	for _, u := range users {
		m.users[u.ID()] = u
	}
	return m
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	if m.err != nil {
		return m.err
	}
	m.nextID++
	if err := u.SetID(m.nextID); err != nil {
		return err
	}
	m.users[u.ID()] = u
	return nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	m.users[u.ID()] = u
	return m.err
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, errors.NewNotFoundError("User not found")
}

func (m *mockUserRepository) GetByIDs(ctx context.Context, ids []uint) ([]*user.User, error) {
	var out []*user.User
	for _, id := range ids {
		if u, ok := m.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, m.err
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, u := range m.users {
		if u.Email().String() == email {
			return u, nil
		}
	}
	return nil, errors.NewNotFoundError("User not found")
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := m.GetByEmail(ctx, email)
	if errors.IsNotFoundError(err) {
		return false, nil
	}
	return err == nil, err
}

func (m *mockUserRepository) List(ctx context.Context) ([]*user.User, error) {
	out := make([]*user.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, u)
	}
	return out, m.err
}

func (m *mockUserRepository) TicketCounts(ctx context.Context, ids []uint) (map[uint]user.TicketCounts, error) {
	return map[uint]user.TicketCounts{}, m.err
}

type mockHasher struct{}

func (mockHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (mockHasher) Verify(password, hash string) error {
	if hash != "hashed:"+password {
		return errors.NewUnauthorizedError("mismatch")
	}
	return nil
}

func newTestUser(id uint, email, password string, role authorization.UserRole, active bool) *user.User {
	addr, err := vo.NewEmail(email)
	if err != nil {
		panic(err)
	}
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	u, err := user.ReconstructUser(id, addr, "hashed:"+password, "Test", "User", role, active, now, now)
	if err != nil {
		panic(err)
	}
	return u
}
