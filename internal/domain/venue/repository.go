package venue

import "context"

// Repository exposes the venue catalog.
type Repository interface {
	List(ctx context.Context) ([]Venue, error)
	GetByID(ctx context.Context, venueID string) (Venue, bool, error)
}
