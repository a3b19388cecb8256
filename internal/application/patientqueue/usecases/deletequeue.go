package usecases

import (
	"context"

	"antrean/internal/application/patientqueue/dto"
	"antrean/internal/domain/doctor"
	"antrean/internal/domain/patientqueue"
	"antrean/internal/domain/visittime"
	"antrean/internal/shared/errors"
	"antrean/internal/shared/logger"
)

type DeleteQueueCommand struct {
	EntryID uint
}

// DeleteQueueUseCase removes a queue entry by ID and returns the deleted
// entry joined with its doctor and slot. A missing entry fails before the
// delete call is ever issued.
type DeleteQueueUseCase struct {
	entryRepo     patientqueue.Repository
	doctorRepo    doctor.Repository
	visitTimeRepo visittime.Repository
	logger        logger.Interface
}

func NewDeleteQueueUseCase(
	entryRepo patientqueue.Repository,
	doctorRepo doctor.Repository,
	visitTimeRepo visittime.Repository,
	logger logger.Interface,
) *DeleteQueueUseCase {
	return &DeleteQueueUseCase{
		entryRepo:     entryRepo,
		doctorRepo:    doctorRepo,
		visitTimeRepo: visitTimeRepo,
		logger:        logger,
	}
}

func (uc *DeleteQueueUseCase) Execute(ctx context.Context, cmd DeleteQueueCommand) (*dto.QueueEntryDTO, error) {
	if cmd.EntryID == 0 {
		return nil, errors.NewValidationError("ID antrian tidak valid")
	}

	entry, err := uc.entryRepo.FindByID(ctx, cmd.EntryID)
	if err != nil {
		return nil, errors.NewNotFoundError("Antrian tidak ditemukan")
	}

	doc, err := uc.doctorRepo.FindByID(ctx, entry.DoctorID())
	if err != nil {
		uc.logger.Errorw("failed to load doctor for deleted entry",
			"entry_id", cmd.EntryID, "doctor_id", entry.DoctorID(), "error", err)
		return nil, err
	}

	slot, err := uc.visitTimeRepo.FindByID(ctx, entry.VisitTimeID())
	if err != nil {
		uc.logger.Errorw("failed to load visit time for deleted entry",
			"entry_id", cmd.EntryID, "visit_time_id", entry.VisitTimeID(), "error", err)
		return nil, err
	}

	if err := uc.entryRepo.Delete(ctx, cmd.EntryID); err != nil {
		uc.logger.Errorw("failed to delete queue entry", "entry_id", cmd.EntryID, "error", err)
		return nil, err
	}

	uc.logger.Infow("queue entry deleted", "entry_id", cmd.EntryID)

	result := dto.FromEntry(entry, doc, slot)
	return &result, nil
}
