package memory

import (
	"context"

	"github.com/riskibarqy/venue-insight/internal/domain/playerperformance"
)

type PlayerPerformanceRepository struct {
	table *venueTable[playerperformance.Record]
}

func NewPlayerPerformanceRepository(recordsByVenue map[string][]playerperformance.Record) *PlayerPerformanceRepository {
	return &PlayerPerformanceRepository{table: newVenueTable(recordsByVenue)}
}

func (r *PlayerPerformanceRepository) ListByVenue(_ context.Context, venueID string) ([]playerperformance.Record, bool, error) {
	items, ok := r.table.list(venueID)
	return items, ok, nil
}
