package usecases

import (
	"context"

	"antrean/internal/application/doctor/dto"
)

type ListDoctorsExecutor interface {
	Execute(ctx context.Context) ([]dto.DoctorDTO, error)
}

type ListSpecializationsExecutor interface {
	Execute(ctx context.Context) ([]dto.SpecializationDTO, error)
}

type ListDoctorsBySpecializationExecutor interface {
	Execute(ctx context.Context, query ListDoctorsBySpecializationQuery) ([]dto.DoctorDTO, error)
}
