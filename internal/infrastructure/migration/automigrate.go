package migration

import (
	"fmt"

	"gorm.io/gorm"

	"antrean/internal/infrastructure/persistence/models"
	"antrean/internal/shared/logger"
)

// AutoMigrateModels returns the models covered by GORM AutoMigrate.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.DoctorModel{},
		&models.VisitTimeModel{},
		&models.PatientQueueModel{},
	}
}

// GormAutoMigrateStrategy migrates the schema directly from struct
// definitions. Development only.
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

func NewGormAutoMigrateStrategy() *GormAutoMigrateStrategy {
	return &GormAutoMigrateStrategy{
		logger: logger.NewLogger().With("component", "migration.automigrate"),
	}
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB, models ...interface{}) error {
	s.logger.Infow("starting gorm auto-migration", "models_count", len(models))

	if err := db.AutoMigrate(models...); err != nil {
		s.logger.Errorw("auto-migration failed", "error", err)
		return fmt.Errorf("failed to auto-migrate: %w", err)
	}

	s.logger.Infow("auto-migration completed successfully")
	return nil
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}
