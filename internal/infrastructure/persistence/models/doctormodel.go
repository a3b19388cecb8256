package models

import "time"

type DoctorModel struct {
	ID             uint      `gorm:"primaryKey"`
	Name           string    `gorm:"size:100;not null"`
	Specialization string    `gorm:"size:100;not null;index"`
	CreatedAt      time.Time `gorm:"autoCreateTime;not null"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (DoctorModel) TableName() string {
	return "doctors"
}
