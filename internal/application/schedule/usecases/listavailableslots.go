package usecases

import (
	"context"
	"time"

	"antrean/internal/application/schedule/dto"
	"antrean/internal/domain/patientqueue"
	"antrean/internal/domain/visittime"
	"antrean/internal/shared/biztime"
	"antrean/internal/shared/errors"
	"antrean/internal/shared/logger"
)

type ListAvailableSlotsQuery struct {
	DoctorID uint
	// Date is an optional YYYY-MM-DD string; empty means today.
	Date string
}

// ListAvailableSlotsUseCase returns the visit-time slots the doctor has not
// yet been booked for on the requested clinic day. It fetches every slot,
// collects the slot IDs already booked inside the day boundary, and returns
// the set difference in the slots' stored order.
type ListAvailableSlotsUseCase struct {
	visitTimeRepo visittime.Repository
	entryRepo     patientqueue.Repository
	logger        logger.Interface
}

func NewListAvailableSlotsUseCase(
	visitTimeRepo visittime.Repository,
	entryRepo patientqueue.Repository,
	logger logger.Interface,
) *ListAvailableSlotsUseCase {
	return &ListAvailableSlotsUseCase{
		visitTimeRepo: visitTimeRepo,
		entryRepo:     entryRepo,
		logger:        logger,
	}
}

func (uc *ListAvailableSlotsUseCase) Execute(ctx context.Context, query ListAvailableSlotsQuery) ([]dto.SlotDTO, error) {
	if query.DoctorID == 0 {
		return nil, errors.NewValidationError("Invalid doctor ID")
	}

	dayStart, dayEnd, err := resolveDayBounds(query.Date)
	if err != nil {
		return nil, err
	}

	allSlots, err := uc.visitTimeRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list visit times", "error", err)
		return nil, err
	}

	bookedIDs, err := uc.entryRepo.ListBookedSlotIDs(ctx, query.DoctorID, dayStart, dayEnd)
	if err != nil {
		uc.logger.Errorw("failed to list booked slots",
			"doctor_id", query.DoctorID, "error", err)
		return nil, err
	}

	booked := make(map[uint]struct{}, len(bookedIDs))
	for _, id := range bookedIDs {
		booked[id] = struct{}{}
	}

	available := make([]*visittime.VisitTime, 0, len(allSlots))
	for _, slot := range allSlots {
		if _, taken := booked[slot.ID()]; !taken {
			available = append(available, slot)
		}
	}

	return dto.FromVisitTimes(available), nil
}

// resolveDayBounds turns an optional YYYY-MM-DD string into the UTC bounds
// of that clinic calendar day, defaulting to today.
func resolveDayBounds(date string) (time.Time, time.Time, error) {
	target := biztime.NowUTC()
	if date != "" {
		parsed, err := biztime.ParseDateInClinicTimezone(date)
		if err != nil {
			return time.Time{}, time.Time{}, errors.NewValidationError("Invalid date format, expected YYYY-MM-DD")
		}
		target = parsed
	}
	start, end := biztime.DayBoundsUTC(target)
	return start, end, nil
}
