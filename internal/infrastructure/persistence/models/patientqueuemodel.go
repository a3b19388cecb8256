package models

import "time"

type PatientQueueModel struct {
	ID          uint      `gorm:"primaryKey"`
	QueueNumber string    `gorm:"size:20;not null;index"`
	PatientName string    `gorm:"size:50;not null"`
	DoctorID    uint      `gorm:"not null;index:idx_patientqueues_doctor_slot"`
	VisitTimeID uint      `gorm:"not null;index:idx_patientqueues_doctor_slot"`
	CreatedAt   time.Time `gorm:"not null;index"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (PatientQueueModel) TableName() string {
	return "patientqueues"
}
