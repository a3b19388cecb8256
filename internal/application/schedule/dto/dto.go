package dto

import (
	"time"

	"antrean/internal/domain/visittime"
)

// SlotDTO is the transport representation of a visit-time slot.
type SlotDTO struct {
	ID       uint      `json:"id"`
	TimeSlot time.Time `json:"time_slot"`
}

func FromVisitTime(v *visittime.VisitTime) SlotDTO {
	return SlotDTO{
		ID:       v.ID(),
		TimeSlot: v.TimeSlot(),
	}
}

func FromVisitTimes(slots []*visittime.VisitTime) []SlotDTO {
	out := make([]SlotDTO, len(slots))
	for i, v := range slots {
		out[i] = FromVisitTime(v)
	}
	return out
}
