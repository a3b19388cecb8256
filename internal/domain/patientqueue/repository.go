package patientqueue

import (
	"context"
	"time"
)

// Repository is the access contract for queue entries.
type Repository interface {
	// Save persists a new entry and assigns its generated ID.
	Save(ctx context.Context, entry *Entry) error

	// FindByID returns the entry or a not-found error.
	FindByID(ctx context.Context, id uint) (*Entry, error)

	// ListAll returns every entry ordered by creation time ascending.
	ListAll(ctx context.Context) ([]*Entry, error)

	// Delete removes an entry by ID, returning a not-found error when no
	// row was deleted.
	Delete(ctx context.Context, id uint) error

	// ListBookedSlotIDs returns the visit-time IDs the doctor already has
	// entries for with creation timestamps inside [from, to].
	ListBookedSlotIDs(ctx context.Context, doctorID uint, from, to time.Time) ([]uint, error)

	// CountForDoctor counts the doctor's entries created inside [from, to].
	// The queue number generator feeds it today's day boundary.
	CountForDoctor(ctx context.Context, doctorID uint, from, to time.Time) (int64, error)

	// ExistsForSlot reports whether any entry exists for the
	// (doctor, visit time) pair, regardless of date. Registration's
	// duplicate check is deliberately unbounded in time, unlike the
	// day-scoped availability queries.
	ExistsForSlot(ctx context.Context, doctorID, visitTimeID uint) (bool, error)

	// ExistsForSlotBetween reports whether an entry exists for the
	// (doctor, visit time) pair created inside [from, to].
	ExistsForSlotBetween(ctx context.Context, doctorID, visitTimeID uint, from, to time.Time) (bool, error)
}
