package migration

import (
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"helpdesk/internal/shared/logger"
)

//go:embed scripts/*.sql
var embeddedScripts embed.FS

// ScriptsDir is the directory of the embedded SQL migrations and the
// default target of "migrate create".
const ScriptsDir = "scripts"

// Strategy defines the interface for different migration strategies
type Strategy interface {
	// Migrate executes the migration strategy
	Migrate(db *gorm.DB, models ...interface{}) error
	// GetName returns the strategy name
	GetName() string
}

// GooseStrategy runs the versioned MySQL scripts embedded in the binary.
type GooseStrategy struct {
	logger logger.Interface
}

func NewGooseStrategy() *GooseStrategy {
	l := logger.NewLogger().With("component", "migration.goose")
	goose.SetBaseFS(embeddedScripts)
	goose.SetLogger(&gooseLogger{logger: l})
	return &GooseStrategy{logger: l}
}

func (s *GooseStrategy) Migrate(db *gorm.DB, models ...interface{}) error {
	s.logger.Infow("starting goose migration", "scripts_path", ScriptsDir)

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if err := goose.SetDialect("mysql"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	currentVersion, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		s.logger.Errorw("failed to get current version", "error", err)
		return fmt.Errorf("failed to get current version: %w", err)
	}

	s.logger.Infow("current migration status", "version", currentVersion)

	if err := goose.Up(sqlDB, ScriptsDir); err != nil {
		s.logger.Errorw("migration failed", "error", err)
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	finalVersion, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		s.logger.Errorw("failed to get final version", "error", err)
		return fmt.Errorf("failed to get final version: %w", err)
	}

	s.logger.Infow("migration completed successfully",
		"from_version", currentVersion,
		"to_version", finalVersion)

	return nil
}

func (s *GooseStrategy) GetName() string {
	return "goose"
}

func (s *GooseStrategy) MigrateDown(db *gorm.DB, steps int) error {
	s.logger.Infow("starting down migration", "steps", steps)

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if err := goose.SetDialect("mysql"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	for i := 0; i < steps; i++ {
		if err := goose.Down(sqlDB, ScriptsDir); err != nil {
			s.logger.Errorw("down migration failed", "error", err)
			return fmt.Errorf("failed to run down migration: %w", err)
		}
	}

	s.logger.Infow("down migration completed successfully")
	return nil
}

func (s *GooseStrategy) GetVersion(db *gorm.DB) (int64, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return 0, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if err := goose.SetDialect("mysql"); err != nil {
		return 0, fmt.Errorf("failed to set goose dialect: %w", err)
	}

	version, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		return 0, fmt.Errorf("failed to get version: %w", err)
	}

	return version, nil
}

func (s *GooseStrategy) Status(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if err := goose.SetDialect("mysql"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.Status(sqlDB, ScriptsDir); err != nil {
		return fmt.Errorf("failed to get status: %w", err)
	}

	return nil
}

// Create writes a new SQL migration skeleton into dir on the local disk.
func (s *GooseStrategy) Create(dir, name string) error {
	goose.SetBaseFS(nil)
	defer goose.SetBaseFS(embeddedScripts)

	if err := goose.SetDialect("mysql"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.Create(nil, dir, name, "sql"); err != nil {
		return fmt.Errorf("failed to create migration: %w", err)
	}

	s.logger.Infow("migration created successfully", "name", name, "dir", dir)
	return nil
}

// gooseLogger routes goose progress output through the application logger.
type gooseLogger struct {
	logger logger.Interface
}

func (l *gooseLogger) Printf(format string, v ...interface{}) {
	l.logger.Infow(fmt.Sprintf(format, v...))
}

func (l *gooseLogger) Fatalf(format string, v ...interface{}) {
	l.logger.Fatalw(fmt.Sprintf(format, v...))
}
