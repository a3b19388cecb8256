package dto

import (
	"time"

	"antrean/internal/domain/doctor"
)

// DoctorDTO is the transport representation of a doctor.
type DoctorDTO struct {
	ID             uint      `json:"id"`
	Name           string    `json:"name"`
	Specialization string    `json:"specialization"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// SpecializationDTO carries one distinct specialization label.
type SpecializationDTO struct {
	Specialization string `json:"specialization"`
}

func FromDoctor(d *doctor.Doctor) DoctorDTO {
	return DoctorDTO{
		ID:             d.ID(),
		Name:           d.Name(),
		Specialization: d.Specialization(),
		CreatedAt:      d.CreatedAt(),
		UpdatedAt:      d.UpdatedAt(),
	}
}

func FromDoctors(doctors []*doctor.Doctor) []DoctorDTO {
	out := make([]DoctorDTO, len(doctors))
	for i, d := range doctors {
		out[i] = FromDoctor(d)
	}
	return out
}
