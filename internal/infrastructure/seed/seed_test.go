package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/infrastructure/repository"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/logger"
)

type plainHasher struct{}

func (plainHasher) Hash(p string) (string, error) { return "hashed:" + p, nil }

type countingPolicies struct{ calls int }

func (c *countingPolicies) EnsureDefaultPolicies() error {
	c.calls++
	return nil
}

func setup(t *testing.T) (*Seeder, *repository.UserRepository, *repository.TicketRepository, *countingPolicies) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(models.All()...))

	log := logger.NewLogger()
	users := repository.NewUserRepository(db, log)
	tickets := repository.NewTicketRepository(db, log)
	policies := &countingPolicies{}
	return NewSeeder(users, tickets, plainHasher{}, policies, log), users, tickets, policies
}

func TestSeeder_Run(t *testing.T) {
	s, users, tickets, policies := setup(t)
	ctx := t.Context()

	res, err := s.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, res.UsersCreated)
	assert.Equal(t, 3, res.TicketsCreated)
	assert.Equal(t, 1, policies.calls)

	admin, err := users.GetByEmail(ctx, "admin@crm.com")
	require.NoError(t, err)
	assert.Equal(t, authorization.RoleAdmin, admin.Role())
	assert.Equal(t, "hashed:admin123", admin.PasswordHash())

	regular, err := users.GetByEmail(ctx, "user@crm.com")
	require.NoError(t, err)
	assert.Equal(t, "Regular User", regular.FullName())

	creatorID := regular.ID()
	list, total, err := tickets.List(ctx, ticket.TicketFilter{CreatorID: &creatorID, Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)

	assigned := 0
	for _, tk := range list {
		if tk.AssigneeID() != nil {
			assert.Equal(t, admin.ID(), *tk.AssigneeID())
			assert.Equal(t, "Bug: Data Export Not Working", tk.Title())
			assigned++
		}
	}
	assert.Equal(t, 1, assigned)
}

func TestSeeder_RunIsIdempotent(t *testing.T) {
	s, _, tickets, policies := setup(t)
	ctx := t.Context()

	_, err := s.Run(ctx)
	require.NoError(t, err)

	res, err := s.Run(ctx)
	require.NoError(t, err)
	assert.Zero(t, res.UsersCreated)
	assert.Zero(t, res.TicketsCreated)
	assert.Equal(t, 2, policies.calls)

	_, total, err := tickets.List(ctx, ticket.TicketFilter{Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
}
