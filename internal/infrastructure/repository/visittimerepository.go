package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"antrean/internal/domain/visittime"
	"antrean/internal/infrastructure/persistence/mappers"
	"antrean/internal/infrastructure/persistence/models"
	"antrean/internal/shared/db"
)

type VisitTimeRepository struct {
	db     *gorm.DB
	mapper mappers.VisitTimeMapper
}

func NewVisitTimeRepository(db *gorm.DB) *VisitTimeRepository {
	return &VisitTimeRepository{
		db:     db,
		mapper: mappers.NewVisitTimeMapper(),
	}
}

func (r *VisitTimeRepository) List(ctx context.Context) ([]*visittime.VisitTime, error) {
	var dbModels []models.VisitTimeModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Order("id ASC").
		Find(&dbModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list visit times: %w", err)
	}

	slots := make([]*visittime.VisitTime, 0, len(dbModels))
	for i := range dbModels {
		v, err := r.mapper.ToDomain(&dbModels[i])
		if err != nil {
			return nil, fmt.Errorf("failed to map visit time (id=%d): %w", dbModels[i].ID, err)
		}
		slots = append(slots, v)
	}

	return slots, nil
}

func (r *VisitTimeRepository) FindByID(ctx context.Context, id uint) (*visittime.VisitTime, error) {
	var model models.VisitTimeModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("visit time not found")
		}
		return nil, fmt.Errorf("failed to find visit time: %w", err)
	}

	return r.mapper.ToDomain(&model)
}
