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

// ListQueuesUseCase returns every queue entry ordered by creation time,
// joined with its doctor and visit time. Doctors and slots are small
// reference tables, so both are prefetched in full rather than joined per
// entry.
type ListQueuesUseCase struct {
	entryRepo     patientqueue.Repository
	doctorRepo    doctor.Repository
	visitTimeRepo visittime.Repository
	logger        logger.Interface
}

func NewListQueuesUseCase(
	entryRepo patientqueue.Repository,
	doctorRepo doctor.Repository,
	visitTimeRepo visittime.Repository,
	logger logger.Interface,
) *ListQueuesUseCase {
	return &ListQueuesUseCase{
		entryRepo:     entryRepo,
		doctorRepo:    doctorRepo,
		visitTimeRepo: visitTimeRepo,
		logger:        logger,
	}
}

func (uc *ListQueuesUseCase) Execute(ctx context.Context) ([]dto.QueueEntryDTO, error) {
	entries, err := uc.entryRepo.ListAll(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list queue entries", "error", err)
		return nil, err
	}

	doctors, err := uc.doctorRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list doctors", "error", err)
		return nil, err
	}
	doctorsByID := make(map[uint]*doctor.Doctor, len(doctors))
	for _, d := range doctors {
		doctorsByID[d.ID()] = d
	}

	slots, err := uc.visitTimeRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list visit times", "error", err)
		return nil, err
	}
	slotsByID := make(map[uint]*visittime.VisitTime, len(slots))
	for _, v := range slots {
		slotsByID[v.ID()] = v
	}

	out := make([]dto.QueueEntryDTO, 0, len(entries))
	for _, e := range entries {
		doc, ok := doctorsByID[e.DoctorID()]
		if !ok {
			return nil, errors.NewInternalError("queue entry references unknown doctor")
		}
		slot, ok := slotsByID[e.VisitTimeID()]
		if !ok {
			return nil, errors.NewInternalError("queue entry references unknown visit time")
		}
		out = append(out, dto.FromEntry(e, doc, slot))
	}

	return out, nil
}
