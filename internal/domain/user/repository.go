package user

import "context"

// TicketCounts aggregates how many tickets a user created and is assigned.
type TicketCounts struct {
	Created  int64
	Assigned int64
}

// Repository defines the interface for user data operations.
// Lookups of a missing user return a not-found AppError.
type Repository interface {
	Create(ctx context.Context, user *User) error
	Update(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByIDs(ctx context.Context, ids []uint) ([]*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// List returns every user, newest first.
	List(ctx context.Context) ([]*User, error)
	TicketCounts(ctx context.Context, userIDs []uint) (map[uint]TicketCounts, error)
}
