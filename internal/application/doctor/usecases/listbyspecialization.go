package usecases

import (
	"context"

	"antrean/internal/application/doctor/dto"
	"antrean/internal/domain/doctor"
	"antrean/internal/shared/errors"
	"antrean/internal/shared/logger"
)

type ListDoctorsBySpecializationQuery struct {
	Specialization string
}

type ListDoctorsBySpecializationUseCase struct {
	doctorRepo doctor.Repository
	logger     logger.Interface
}

func NewListDoctorsBySpecializationUseCase(doctorRepo doctor.Repository, logger logger.Interface) *ListDoctorsBySpecializationUseCase {
	return &ListDoctorsBySpecializationUseCase{
		doctorRepo: doctorRepo,
		logger:     logger,
	}
}

func (uc *ListDoctorsBySpecializationUseCase) Execute(ctx context.Context, query ListDoctorsBySpecializationQuery) ([]dto.DoctorDTO, error) {
	if query.Specialization == "" {
		return nil, errors.NewValidationError("Specialization is required")
	}

	doctors, err := uc.doctorRepo.ListBySpecialization(ctx, query.Specialization)
	if err != nil {
		uc.logger.Errorw("failed to list doctors by specialization",
			"specialization", query.Specialization, "error", err)
		return nil, err
	}

	return dto.FromDoctors(doctors), nil
}
