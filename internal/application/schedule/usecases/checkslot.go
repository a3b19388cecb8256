package usecases

import (
	"context"

	"antrean/internal/domain/patientqueue"
	"antrean/internal/shared/errors"
	"antrean/internal/shared/logger"
)

type CheckSlotQuery struct {
	DoctorID    uint
	VisitTimeID uint
	// Date is an optional YYYY-MM-DD string; empty means today.
	Date string
}

type CheckSlotResult struct {
	IsAvailable bool `json:"isAvailable"`
}

// CheckSlotUseCase answers whether a single (doctor, slot) pair is free on
// the requested clinic day. Unlike the list use case it runs one direct
// existence query instead of computing the full set difference.
type CheckSlotUseCase struct {
	entryRepo patientqueue.Repository
	logger    logger.Interface
}

func NewCheckSlotUseCase(entryRepo patientqueue.Repository, logger logger.Interface) *CheckSlotUseCase {
	return &CheckSlotUseCase{
		entryRepo: entryRepo,
		logger:    logger,
	}
}

func (uc *CheckSlotUseCase) Execute(ctx context.Context, query CheckSlotQuery) (*CheckSlotResult, error) {
	if query.DoctorID == 0 || query.VisitTimeID == 0 {
		return nil, errors.NewValidationError("Invalid doctor ID or time slot ID")
	}

	dayStart, dayEnd, err := resolveDayBounds(query.Date)
	if err != nil {
		return nil, err
	}

	booked, err := uc.entryRepo.ExistsForSlotBetween(ctx, query.DoctorID, query.VisitTimeID, dayStart, dayEnd)
	if err != nil {
		uc.logger.Errorw("failed to check slot availability",
			"doctor_id", query.DoctorID, "visit_time_id", query.VisitTimeID, "error", err)
		return nil, err
	}

	return &CheckSlotResult{IsAvailable: !booked}, nil
}
