package migration

import (
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/shared/config"
	"helpdesk/internal/shared/logger"
)

// Manager handles database migrations with different strategies
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewManager picks goose for MySQL and AutoMigrate for SQLite, whose
// dialect cannot run the MySQL scripts.
func NewManager(driver string) *Manager {
	var strategy Strategy

	switch driver {
	case config.DriverSQLite:
		strategy = NewGormAutoMigrateStrategy()
	default:
		strategy = NewGooseStrategy()
	}

	return NewManagerWithStrategy(strategy)
}

// SupportsVersioning reports whether the driver runs the versioned goose scripts.
func SupportsVersioning(driver string) bool {
	return driver != config.DriverSQLite
}

// NewManagerWithStrategy creates a new migration manager with a specific strategy
func NewManagerWithStrategy(strategy Strategy) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   logger.WithComponent("migration.manager"),
	}
}

// Migrate executes the configured migration strategy
func (m *Manager) Migrate(db *gorm.DB, models ...interface{}) error {
	m.logger.Infow("starting database migration",
		"strategy", m.strategy.GetName(),
		"models_count", len(models))

	if err := m.strategy.Migrate(db, models...); err != nil {
		m.logger.Errorw("migration failed",
			"strategy", m.strategy.GetName(),
			"error", err)
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}

	m.logger.Infow("database migration completed successfully",
		"strategy", m.strategy.GetName())

	return nil
}

// GetStrategy returns the current migration strategy
func (m *Manager) GetStrategy() Strategy {
	return m.strategy
}

// GetStrategyInfo returns information about the current strategy
func (m *Manager) GetStrategyInfo() map[string]interface{} {
	return map[string]interface{}{
		"name":        m.strategy.GetName(),
		"description": getStrategyDescription(m.strategy.GetName()),
	}
}

func getStrategyDescription(strategyName string) string {
	switch strategyName {
	case "gorm_auto_migrate":
		return "GORM AutoMigrate - schema derived from the persistence models"
	case "goose":
		return "goose - versioned SQL migration scripts embedded in the binary"
	default:
		return "Unknown migration strategy"
	}
}
