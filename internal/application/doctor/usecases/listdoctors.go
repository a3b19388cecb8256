package usecases

import (
	"context"

	"antrean/internal/application/doctor/dto"
	"antrean/internal/domain/doctor"
	"antrean/internal/shared/logger"
)

type ListDoctorsUseCase struct {
	doctorRepo doctor.Repository
	logger     logger.Interface
}

func NewListDoctorsUseCase(doctorRepo doctor.Repository, logger logger.Interface) *ListDoctorsUseCase {
	return &ListDoctorsUseCase{
		doctorRepo: doctorRepo,
		logger:     logger,
	}
}

func (uc *ListDoctorsUseCase) Execute(ctx context.Context) ([]dto.DoctorDTO, error) {
	doctors, err := uc.doctorRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list doctors", "error", err)
		return nil, err
	}

	return dto.FromDoctors(doctors), nil
}
