package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"helpdesk/internal/domain/ticket"
	tvo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/domain/user"
	uvo "helpdesk/internal/domain/user/valueobjects"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// every connection to :memory: is a separate database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(models.All()...))
	return db
}

func testLogger() logger.Interface {
	return logger.NewLogger()
}

func createUser(t *testing.T, repo *UserRepository, email string, role authorization.UserRole) *user.User {
	t.Helper()
	addr, err := uvo.NewEmail(email)
	require.NoError(t, err)
	u, err := user.NewUser(addr, "hash", "Test", "User", role)
	require.NoError(t, err)
	require.NoError(t, repo.Create(t.Context(), u))
	return u
}

func createTicket(t *testing.T, repo *TicketRepository, title string, creatorID uint) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.NewTicket(title, "description of "+title, tvo.PriorityMedium, creatorID)
	require.NoError(t, err)
	require.NoError(t, repo.Create(t.Context(), tk))
	return tk
}
