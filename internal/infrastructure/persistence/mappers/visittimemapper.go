package mappers

import (
	"antrean/internal/domain/visittime"
	"antrean/internal/infrastructure/persistence/models"
)

// VisitTimeMapper handles the conversion between VisitTime domain entities and persistence models.
type VisitTimeMapper interface {
	ToDomain(model *models.VisitTimeModel) (*visittime.VisitTime, error)
}

type VisitTimeMapperImpl struct{}

func NewVisitTimeMapper() VisitTimeMapper {
	return &VisitTimeMapperImpl{}
}

func (m *VisitTimeMapperImpl) ToDomain(model *models.VisitTimeModel) (*visittime.VisitTime, error) {
	return visittime.ReconstructVisitTime(model.ID, model.TimeSlot)
}
