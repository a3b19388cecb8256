package usecases

import (
	"context"

	"antrean/internal/application/doctor/dto"
	"antrean/internal/domain/doctor"
	"antrean/internal/shared/logger"
)

type ListSpecializationsUseCase struct {
	doctorRepo doctor.Repository
	logger     logger.Interface
}

func NewListSpecializationsUseCase(doctorRepo doctor.Repository, logger logger.Interface) *ListSpecializationsUseCase {
	return &ListSpecializationsUseCase{
		doctorRepo: doctorRepo,
		logger:     logger,
	}
}

func (uc *ListSpecializationsUseCase) Execute(ctx context.Context) ([]dto.SpecializationDTO, error) {
	specializations, err := uc.doctorRepo.ListSpecializations(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list specializations", "error", err)
		return nil, err
	}

	out := make([]dto.SpecializationDTO, len(specializations))
	for i, s := range specializations {
		out[i] = dto.SpecializationDTO{Specialization: s}
	}
	return out, nil
}
