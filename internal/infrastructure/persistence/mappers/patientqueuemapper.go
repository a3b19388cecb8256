package mappers

import (
	"antrean/internal/domain/patientqueue"
	"antrean/internal/infrastructure/persistence/models"
)

// PatientQueueMapper handles the conversion between queue entry domain
// entities and persistence models.
type PatientQueueMapper interface {
	// ToModel converts an entry domain entity to a persistence model.
	ToModel(e *patientqueue.Entry) *models.PatientQueueModel

	// ToDomain converts an entry persistence model to a domain entity.
	ToDomain(model *models.PatientQueueModel) (*patientqueue.Entry, error)
}

type PatientQueueMapperImpl struct{}

func NewPatientQueueMapper() PatientQueueMapper {
	return &PatientQueueMapperImpl{}
}

func (m *PatientQueueMapperImpl) ToModel(e *patientqueue.Entry) *models.PatientQueueModel {
	return &models.PatientQueueModel{
		ID:          e.ID(),
		QueueNumber: e.QueueNumber(),
		PatientName: e.PatientName(),
		DoctorID:    e.DoctorID(),
		VisitTimeID: e.VisitTimeID(),
		CreatedAt:   e.CreatedAt(),
	}
}

func (m *PatientQueueMapperImpl) ToDomain(model *models.PatientQueueModel) (*patientqueue.Entry, error) {
	return patientqueue.ReconstructEntry(
		model.ID,
		model.QueueNumber,
		model.PatientName,
		model.DoctorID,
		model.VisitTimeID,
		model.CreatedAt,
	)
}
