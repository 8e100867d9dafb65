// Package seed installs the demo accounts, sample tickets and default
// authorization policies. Every step is safe to run repeatedly.
package seed

import (
	"context"
	"fmt"

	"helpdesk/internal/domain/ticket"
	tvo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/domain/user"
	uvo "helpdesk/internal/domain/user/valueobjects"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type PasswordHasher interface {
	Hash(password string) (string, error)
}

type PolicyInstaller interface {
	EnsureDefaultPolicies() error
}

type account struct {
	email     string
	password  string
	firstName string
	lastName  string
	role      authorization.UserRole
}

var (
	adminAccount = account{"admin@crm.com", "admin123", "Admin", "User", authorization.RoleAdmin}
	userAccount  = account{"user@crm.com", "user123", "Regular", "User", authorization.RoleUser}
)

type sampleTicket struct {
	title         string
	description   string
	priority      tvo.Priority
	assignToAdmin bool
}

var sampleTickets = []sampleTicket{
	{"Login Issues", "Unable to login to the system with correct credentials", tvo.PriorityHigh, false},
	{"Feature Request: Dark Mode", "Would like to have a dark mode option in the interface", tvo.PriorityLow, false},
	{"Bug: Data Export Not Working", "When trying to export data to CSV, the file is corrupted", tvo.PriorityMedium, true},
}

// Result reports what a run created.
type Result struct {
	UsersCreated   int
	TicketsCreated int
}

type Seeder struct {
	users    user.Repository
	tickets  ticket.TicketRepository
	hasher   PasswordHasher
	policies PolicyInstaller
	logger   logger.Interface
}

func NewSeeder(
	users user.Repository,
	tickets ticket.TicketRepository,
	hasher PasswordHasher,
	policies PolicyInstaller,
	logger logger.Interface,
) *Seeder {
	return &Seeder{
		users:    users,
		tickets:  tickets,
		hasher:   hasher,
		policies: policies,
		logger:   logger,
	}
}

func (s *Seeder) Run(ctx context.Context) (*Result, error) {
	result := &Result{}

	if s.policies != nil {
		if err := s.policies.EnsureDefaultPolicies(); err != nil {
			return nil, fmt.Errorf("failed to install default policies: %w", err)
		}
	}

	admin, created, err := s.ensureUser(ctx, adminAccount)
	if err != nil {
		return nil, err
	}
	if created {
		result.UsersCreated++
	}

	regular, created, err := s.ensureUser(ctx, userAccount)
	if err != nil {
		return nil, err
	}
	if created {
		result.UsersCreated++
	}

	creatorID := regular.ID()
	_, total, err := s.tickets.List(ctx, ticket.TicketFilter{CreatorID: &creatorID, Limit: 1})
	if err != nil {
		return nil, fmt.Errorf("failed to count sample tickets: %w", err)
	}
	if total > 0 {
		s.logger.Infow("sample tickets already present, skipping", "creator_id", creatorID, "count", total)
		return result, nil
	}

	for _, st := range sampleTickets {
		t, err := ticket.NewTicket(st.title, st.description, st.priority, creatorID)
		if err != nil {
			return nil, fmt.Errorf("invalid sample ticket %q: %w", st.title, err)
		}
		if st.assignToAdmin {
			adminID := admin.ID()
			if _, err := t.Assign(&adminID); err != nil {
				return nil, err
			}
		}
		if err := s.tickets.Create(ctx, t); err != nil {
			return nil, fmt.Errorf("failed to create sample ticket %q: %w", st.title, err)
		}
		result.TicketsCreated++
		s.logger.Infow("sample ticket created", "ticket_id", t.ID(), "title", t.Title())
	}

	return result, nil
}

func (s *Seeder) ensureUser(ctx context.Context, a account) (*user.User, bool, error) {
	existing, err := s.users.GetByEmail(ctx, a.email)
	if err == nil {
		return existing, false, nil
	}
	if !errors.IsNotFoundError(err) {
		return nil, false, fmt.Errorf("failed to look up %s: %w", a.email, err)
	}

	email, err := uvo.NewEmail(a.email)
	if err != nil {
		return nil, false, err
	}
	hash, err := s.hasher.Hash(a.password)
	if err != nil {
		return nil, false, fmt.Errorf("failed to hash password: %w", err)
	}
	u, err := user.NewUser(email, hash, a.firstName, a.lastName, a.role)
	if err != nil {
		return nil, false, err
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, false, fmt.Errorf("failed to create %s: %w", a.email, err)
	}

	s.logger.Infow("user created", "email", a.email, "role", a.role)
	return u, true, nil
}
