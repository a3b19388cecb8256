// Package patientqueue holds the queue entry aggregate and the queue number
// generator. An entry records one patient's booking of a doctor at a visit
// time on a given day; it is created once at registration, never mutated,
// and destroyed only by explicit deletion.
package patientqueue

import (
	"fmt"
	"time"
)

// MaxPatientNameLength bounds the patient name at registration.
const MaxPatientNameLength = 50

type Entry struct {
	id          uint
	queueNumber string
	patientName string
	doctorID    uint
	visitTimeID uint
	createdAt   time.Time
}

// NewEntry validates registration input and builds an unsaved entry.
// The queue number is assigned separately, right before persisting.
func NewEntry(patientName string, doctorID, visitTimeID uint) (*Entry, error) {
	if len(patientName) == 0 {
		return nil, fmt.Errorf("patient name is required")
	}
	if len(patientName) > MaxPatientNameLength {
		return nil, fmt.Errorf("patient name exceeds maximum length of %d characters", MaxPatientNameLength)
	}
	if doctorID == 0 {
		return nil, fmt.Errorf("doctor ID is required")
	}
	if visitTimeID == 0 {
		return nil, fmt.Errorf("visit time ID is required")
	}

	return &Entry{
		patientName: patientName,
		doctorID:    doctorID,
		visitTimeID: visitTimeID,
		createdAt:   time.Now().UTC(),
	}, nil
}

// ReconstructEntry rebuilds an Entry from persisted state.
func ReconstructEntry(
	id uint,
	queueNumber string,
	patientName string,
	doctorID, visitTimeID uint,
	createdAt time.Time,
) (*Entry, error) {
	if id == 0 {
		return nil, fmt.Errorf("entry ID cannot be zero")
	}
	if len(queueNumber) == 0 {
		return nil, fmt.Errorf("queue number is required")
	}
	if len(patientName) == 0 {
		return nil, fmt.Errorf("patient name is required")
	}

	return &Entry{
		id:          id,
		queueNumber: queueNumber,
		patientName: patientName,
		doctorID:    doctorID,
		visitTimeID: visitTimeID,
		createdAt:   createdAt,
	}, nil
}

func (e *Entry) ID() uint {
	return e.id
}

func (e *Entry) QueueNumber() string {
	return e.queueNumber
}

func (e *Entry) PatientName() string {
	return e.patientName
}

func (e *Entry) DoctorID() uint {
	return e.doctorID
}

func (e *Entry) VisitTimeID() uint {
	return e.visitTimeID
}

func (e *Entry) CreatedAt() time.Time {
	return e.createdAt
}

func (e *Entry) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("entry ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("entry ID cannot be zero")
	}
	e.id = id
	return nil
}

func (e *Entry) SetQueueNumber(number string) error {
	if len(e.queueNumber) > 0 {
		return fmt.Errorf("queue number is already set")
	}
	if len(number) == 0 {
		return fmt.Errorf("queue number cannot be empty")
	}
	e.queueNumber = number
	return nil
}
