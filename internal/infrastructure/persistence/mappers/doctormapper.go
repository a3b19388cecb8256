package mappers

import (
	"antrean/internal/domain/doctor"
	"antrean/internal/infrastructure/persistence/models"
)

// DoctorMapper handles the conversion between Doctor domain entities and persistence models.
type DoctorMapper interface {
	ToDomain(model *models.DoctorModel) (*doctor.Doctor, error)
}

type DoctorMapperImpl struct{}

func NewDoctorMapper() DoctorMapper {
	return &DoctorMapperImpl{}
}

func (m *DoctorMapperImpl) ToDomain(model *models.DoctorModel) (*doctor.Doctor, error) {
	return doctor.ReconstructDoctor(
		model.ID,
		model.Name,
		model.Specialization,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
