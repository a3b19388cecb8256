package models

import "time"

type VisitTimeModel struct {
	ID        uint      `gorm:"primaryKey"`
	TimeSlot  time.Time `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime;not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;not null"`
}

func (VisitTimeModel) TableName() string {
	return "visittimes"
}
