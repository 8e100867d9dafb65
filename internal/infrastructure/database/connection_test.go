package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/shared/config"
)

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, "helpdesk.db?_foreign_keys=on", SQLiteDSN("helpdesk.db"))
	assert.Equal(t, "file::memory:?cache=shared&_foreign_keys=on", SQLiteDSN("file::memory:?cache=shared"))
	assert.Equal(t, "x.db?_foreign_keys=off", SQLiteDSN("x.db?_foreign_keys=off"))
}

func TestOpen_SQLite(t *testing.T) {
	db, err := Open(&config.DatabaseConfig{Driver: config.DriverSQLite, Path: ":memory:"})
	require.NoError(t, err)

	var fk int
	require.NoError(t, db.Raw("PRAGMA foreign_keys").Scan(&fk).Error)
	assert.Equal(t, 1, fk)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open(&config.DatabaseConfig{Driver: "oracle"})
	assert.Error(t, err)
}
