package memory

import (
	"context"

	"github.com/riskibarqy/venue-insight/internal/domain/teamperformance"
)

type TeamPerformanceRepository struct {
	table *venueTable[teamperformance.Record]
}

func NewTeamPerformanceRepository(recordsByVenue map[string][]teamperformance.Record) *TeamPerformanceRepository {
	return &TeamPerformanceRepository{table: newVenueTable(recordsByVenue)}
}

func (r *TeamPerformanceRepository) ListByVenue(_ context.Context, venueID string) ([]teamperformance.Record, bool, error) {
	items, ok := r.table.list(venueID)
	return items, ok, nil
}
