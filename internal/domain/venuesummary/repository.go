package venuesummary

import "context"

// Repository exposes one summary per venue id.
type Repository interface {
	GetByVenue(ctx context.Context, venueID string) (Summary, bool, error)
}
