// Package doctor holds the Doctor reference entity. Doctors are maintained
// out-of-band; this service only reads them.
package doctor

import (
	"fmt"
	"time"
)

type Doctor struct {
	id             uint
	name           string
	specialization string
	createdAt      time.Time
	updatedAt      time.Time
}

// ReconstructDoctor rebuilds a Doctor from persisted state.
func ReconstructDoctor(
	id uint,
	name string,
	specialization string,
	createdAt, updatedAt time.Time,
) (*Doctor, error) {
	if id == 0 {
		return nil, fmt.Errorf("doctor ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("doctor name is required")
	}

	return &Doctor{
		id:             id,
		name:           name,
		specialization: specialization,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (d *Doctor) ID() uint {
	return d.id
}

func (d *Doctor) Name() string {
	return d.name
}

func (d *Doctor) Specialization() string {
	return d.specialization
}

func (d *Doctor) CreatedAt() time.Time {
	return d.createdAt
}

func (d *Doctor) UpdatedAt() time.Time {
	return d.updatedAt
}

// HasSpecialization reports whether the doctor carries a non-empty
// specialization label. Queue numbers cannot be generated without one.
func (d *Doctor) HasSpecialization() bool {
	return len(d.specialization) > 0
}
