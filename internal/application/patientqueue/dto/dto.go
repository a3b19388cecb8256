package dto

import (
	"time"

	doctordto "antrean/internal/application/doctor/dto"
	"antrean/internal/domain/doctor"
	"antrean/internal/domain/patientqueue"
	"antrean/internal/domain/visittime"
)

// VisitTimeDTO embeds the slot's derived 12-hour label alongside the raw
// stored instant. The "visitTime" JSON key and "formatted_time" field match
// what the queue display frontend consumes.
type VisitTimeDTO struct {
	ID            uint      `json:"id"`
	TimeSlot      time.Time `json:"time_slot"`
	FormattedTime string    `json:"formatted_time"`
}

// QueueEntryDTO is a queue entry joined with its doctor and visit time.
type QueueEntryDTO struct {
	ID          uint                `json:"id"`
	QueueNumber string              `json:"queue_number"`
	PatientName string              `json:"patient_name"`
	DoctorID    uint                `json:"doctor_id"`
	VisitTimeID uint                `json:"visit_time_id"`
	CreatedAt   time.Time           `json:"created_at"`
	Doctor      doctordto.DoctorDTO `json:"doctor"`
	VisitTime   VisitTimeDTO        `json:"visitTime"`
}

func FromVisitTime(v *visittime.VisitTime) VisitTimeDTO {
	return VisitTimeDTO{
		ID:            v.ID(),
		TimeSlot:      v.TimeSlot(),
		FormattedTime: v.FormattedLabel(),
	}
}

func FromEntry(e *patientqueue.Entry, d *doctor.Doctor, v *visittime.VisitTime) QueueEntryDTO {
	return QueueEntryDTO{
		ID:          e.ID(),
		QueueNumber: e.QueueNumber(),
		PatientName: e.PatientName(),
		DoctorID:    e.DoctorID(),
		VisitTimeID: e.VisitTimeID(),
		CreatedAt:   e.CreatedAt(),
		Doctor:      doctordto.FromDoctor(d),
		VisitTime:   FromVisitTime(v),
	}
}
