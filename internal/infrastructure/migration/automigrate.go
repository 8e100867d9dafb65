package migration

import (
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/logger"
)

func AutoMigrateModels() []interface{} {
	return models.All()
}

// GormAutoMigrateStrategy derives the schema from the persistence models.
// It is used for SQLite and for quick local MySQL setups.
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

func NewGormAutoMigrateStrategy() Strategy {
	return &GormAutoMigrateStrategy{
		logger: logger.NewLogger().With("component", "migration.gorm"),
	}
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB, models ...interface{}) error {
	if len(models) == 0 {
		models = AutoMigrateModels()
	}

	s.logger.Infow("starting gorm auto migration", "models_count", len(models))

	if err := db.AutoMigrate(models...); err != nil {
		s.logger.Errorw("auto migration failed", "error", err)
		return fmt.Errorf("failed to auto migrate: %w", err)
	}

	s.logger.Infow("auto migration completed successfully")
	return nil
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}
