// Package visittime holds the VisitTime reference entity: a recurring
// time-of-day visiting period shared by all doctors. Slots are static
// reference data; only the time-of-day part of the stored instant matters.
package visittime

import (
	"fmt"
	"time"
)

type VisitTime struct {
	id       uint
	timeSlot time.Time
}

// ReconstructVisitTime rebuilds a VisitTime from persisted state.
func ReconstructVisitTime(id uint, timeSlot time.Time) (*VisitTime, error) {
	if id == 0 {
		return nil, fmt.Errorf("visit time ID cannot be zero")
	}
	if timeSlot.IsZero() {
		return nil, fmt.Errorf("visit time slot is required")
	}

	return &VisitTime{id: id, timeSlot: timeSlot}, nil
}

func (v *VisitTime) ID() uint {
	return v.id
}

func (v *VisitTime) TimeSlot() time.Time {
	return v.timeSlot
}

// FormattedLabel renders the slot as a 12-hour clock string, "H:MM AM/PM".
// Hour and minute are extracted from the stored instant in UTC; the hour
// carries no leading zero, the minute always two digits. Midnight renders
// as 12:00 AM and noon as 12:00 PM.
func (v *VisitTime) FormattedLabel() string {
	hour := v.timeSlot.UTC().Hour()
	minute := v.timeSlot.UTC().Minute()

	hour12 := (hour+11)%12 + 1
	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}

	return fmt.Sprintf("%d:%02d %s", hour12, minute, suffix)
}
