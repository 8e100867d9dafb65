package database

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"helpdesk/internal/shared/config"
	appLogger "helpdesk/internal/shared/logger"
)

var (
	db   *gorm.DB
	dbMu sync.RWMutex
)

// Init opens the configured database and installs it as the process connection
func Init(cfg *config.DatabaseConfig) error {
	database, err := Open(cfg)
	if err != nil {
		return err
	}

	dbMu.Lock()
	db = database
	dbMu.Unlock()

	appLogger.Info("database connection established",
		"driver", cfg.Driver,
		"database", databaseName(cfg))

	return nil
}

// Open connects to MySQL or SQLite depending on cfg.Driver and verifies the connection.
func Open(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	// Create custom logger to filter schema queries
	gormLogger := logger.New(
		&filteredLogger{},
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Info,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	dialector, err := newDialector(cfg)
	if err != nil {
		return nil, err
	}

	database, err := gorm.Open(dialector, &gorm.Config{
		Logger:      gormLogger,
		PrepareStmt: cfg.Driver != config.DriverSQLite,
		NowFunc:     func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := database.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if cfg.Driver == config.DriverSQLite {
		// a single writer avoids "database is locked" under concurrent requests
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Minute)
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return database, nil
}

func newDialector(cfg *config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case config.DriverMySQL, "":
		return mysql.New(mysql.Config{
			DSN:                       cfg.GetDSN(),
			SkipInitializeWithVersion: true, // Skip schema validation query
		}), nil
	case config.DriverSQLite:
		return sqlite.Open(SQLiteDSN(cfg.GetDSN())), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}
}

// SQLiteDSN enables foreign key enforcement, which SQLite leaves off per connection.
func SQLiteDSN(path string) string {
	if strings.Contains(path, "_foreign_keys") {
		return path
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_foreign_keys=on"
}

func databaseName(cfg *config.DatabaseConfig) string {
	if cfg.Driver == config.DriverSQLite {
		return cfg.Path
	}
	return cfg.Database
}

// Get returns the database connection
func Get() *gorm.DB {
	dbMu.RLock()
	defer dbMu.RUnlock()
	return db
}

// Close closes the database connection
func Close() error {
	dbMu.RLock()
	currentDB := db
	dbMu.RUnlock()

	if currentDB == nil {
		return nil
	}

	sqlDB, err := currentDB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}

	appLogger.Info("database connection closed")
	return nil
}

// filteredLogger filters out schema validation queries
type filteredLogger struct{}

func (l *filteredLogger) Printf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	lower := strings.ToLower(msg)

	if strings.Contains(lower, "information_schema.schemata") ||
		strings.Contains(lower, "select version()") {
		return
	}

	if strings.Contains(msg, "[error]") || strings.Contains(msg, "ERROR") {
		appLogger.Error("database error", "details", msg)
	} else if strings.Contains(lower, "slow sql") {
		appLogger.Warn("slow query", "details", msg)
	} else {
		appLogger.Debug("database query", "details", msg)
	}
}
