package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"antrean/internal/domain/patientqueue"
	"antrean/internal/infrastructure/persistence/mappers"
	"antrean/internal/infrastructure/persistence/models"
	"antrean/internal/shared/db"
)

type PatientQueueRepository struct {
	db     *gorm.DB
	mapper mappers.PatientQueueMapper
}

func NewPatientQueueRepository(db *gorm.DB) *PatientQueueRepository {
	return &PatientQueueRepository{
		db:     db,
		mapper: mappers.NewPatientQueueMapper(),
	}
}

func (r *PatientQueueRepository) Save(ctx context.Context, entry *patientqueue.Entry) error {
	model := r.mapper.ToModel(entry)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save queue entry: %w", err)
	}

	if err := entry.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *PatientQueueRepository) FindByID(ctx context.Context, id uint) (*patientqueue.Entry, error) {
	var model models.PatientQueueModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("queue entry not found")
		}
		return nil, fmt.Errorf("failed to find queue entry: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *PatientQueueRepository) ListAll(ctx context.Context) ([]*patientqueue.Entry, error) {
	var dbModels []models.PatientQueueModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Order("created_at ASC").
		Find(&dbModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list queue entries: %w", err)
	}

	entries := make([]*patientqueue.Entry, 0, len(dbModels))
	for i := range dbModels {
		e, err := r.mapper.ToDomain(&dbModels[i])
		if err != nil {
			return nil, fmt.Errorf("failed to map queue entry (id=%d): %w", dbModels[i].ID, err)
		}
		entries = append(entries, e)
	}

	return entries, nil
}

func (r *PatientQueueRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.PatientQueueModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete queue entry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("queue entry not found")
	}
	return nil
}

func (r *PatientQueueRepository) ListBookedSlotIDs(ctx context.Context, doctorID uint, from, to time.Time) ([]uint, error) {
	var slotIDs []uint
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.PatientQueueModel{}).
		Where("doctor_id = ?", doctorID).
		Where("created_at BETWEEN ? AND ?", from, to).
		Pluck("visit_time_id", &slotIDs).Error; err != nil {
		return nil, fmt.Errorf("failed to list booked slots: %w", err)
	}

	return slotIDs, nil
}

func (r *PatientQueueRepository) CountForDoctor(ctx context.Context, doctorID uint, from, to time.Time) (int64, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.PatientQueueModel{}).
		Where("doctor_id = ?", doctorID).
		Where("created_at BETWEEN ? AND ?", from, to).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count queue entries: %w", err)
	}

	return count, nil
}

func (r *PatientQueueRepository) ExistsForSlot(ctx context.Context, doctorID, visitTimeID uint) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.PatientQueueModel{}).
		Where("doctor_id = ? AND visit_time_id = ?", doctorID, visitTimeID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check slot booking: %w", err)
	}

	return count > 0, nil
}

func (r *PatientQueueRepository) ExistsForSlotBetween(ctx context.Context, doctorID, visitTimeID uint, from, to time.Time) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.PatientQueueModel{}).
		Where("doctor_id = ? AND visit_time_id = ?", doctorID, visitTimeID).
		Where("created_at BETWEEN ? AND ?", from, to).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check slot booking: %w", err)
	}

	return count > 0, nil
}
