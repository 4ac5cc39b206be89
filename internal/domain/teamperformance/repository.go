package teamperformance

import "context"

type Repository interface {
	ListByVenue(ctx context.Context, venueID string) ([]Record, bool, error)
}
