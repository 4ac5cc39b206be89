package memory

import (
	"context"

	"github.com/riskibarqy/venue-insight/internal/domain/match"
)

type MatchRepository struct {
	table *venueTable[match.Match]
}

func NewMatchRepository(matchesByVenue map[string][]match.Match) *MatchRepository {
	return &MatchRepository{table: newVenueTable(matchesByVenue)}
}

func (r *MatchRepository) ListByVenue(_ context.Context, venueID string) ([]match.Match, bool, error) {
	items, ok := r.table.list(venueID)
	return items, ok, nil
}
