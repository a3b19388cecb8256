package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"antrean/internal/domain/doctor"
	"antrean/internal/infrastructure/persistence/mappers"
	"antrean/internal/infrastructure/persistence/models"
	"antrean/internal/shared/db"
)

type DoctorRepository struct {
	db     *gorm.DB
	mapper mappers.DoctorMapper
}

func NewDoctorRepository(db *gorm.DB) *DoctorRepository {
	return &DoctorRepository{
		db:     db,
		mapper: mappers.NewDoctorMapper(),
	}
}

func (r *DoctorRepository) List(ctx context.Context) ([]*doctor.Doctor, error) {
	var dbModels []models.DoctorModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Order("name ASC").
		Find(&dbModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}

	return r.toDomainList(dbModels)
}

func (r *DoctorRepository) FindByID(ctx context.Context, id uint) (*doctor.Doctor, error) {
	var model models.DoctorModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("doctor not found")
		}
		return nil, fmt.Errorf("failed to find doctor: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *DoctorRepository) ListBySpecialization(ctx context.Context, specialization string) ([]*doctor.Doctor, error) {
	var dbModels []models.DoctorModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("LOWER(specialization) = LOWER(?)", specialization).
		Order("name ASC").
		Find(&dbModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list doctors by specialization: %w", err)
	}

	return r.toDomainList(dbModels)
}

func (r *DoctorRepository) ListSpecializations(ctx context.Context) ([]string, error) {
	var specializations []string
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.DoctorModel{}).
		Distinct("specialization").
		Order("specialization ASC").
		Pluck("specialization", &specializations).Error; err != nil {
		return nil, fmt.Errorf("failed to list specializations: %w", err)
	}

	return specializations, nil
}

func (r *DoctorRepository) toDomainList(dbModels []models.DoctorModel) ([]*doctor.Doctor, error) {
	doctors := make([]*doctor.Doctor, 0, len(dbModels))
	for i := range dbModels {
		d, err := r.mapper.ToDomain(&dbModels[i])
		if err != nil {
			return nil, fmt.Errorf("failed to map doctor (id=%d): %w", dbModels[i].ID, err)
		}
		doctors = append(doctors, d)
	}
	return doctors, nil
}
