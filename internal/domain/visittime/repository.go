package visittime

import "context"

// Repository is the read-only access contract for visit-time slots.
type Repository interface {
	// List returns every slot in stored order. Availability filtering
	// preserves this ordering.
	List(ctx context.Context) ([]*VisitTime, error)

	// FindByID returns the slot or a not-found error.
	FindByID(ctx context.Context, id uint) (*VisitTime, error)
}
