package match

import "context"

// Repository exposes match history per venue. The bool reports whether the
// venue has an entry in the match table at all.
type Repository interface {
	ListByVenue(ctx context.Context, venueID string) ([]Match, bool, error)
}
