package doctor

import "context"

// Repository is the read-only access contract for doctors.
type Repository interface {
	// List returns all doctors ordered by name ascending.
	List(ctx context.Context) ([]*Doctor, error)

	// FindByID returns the doctor or a not-found error.
	FindByID(ctx context.Context, id uint) (*Doctor, error)

	// ListBySpecialization returns doctors whose specialization equals the
	// given label, compared case-insensitively, ordered by name ascending.
	ListBySpecialization(ctx context.Context, specialization string) ([]*Doctor, error)

	// ListSpecializations returns the distinct specialization labels,
	// ordered ascending.
	ListSpecializations(ctx context.Context) ([]string, error)
}
