package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/venue-insight/internal/domain/venuesummary"
)

type VenueSummaryRepository struct {
	mu        sync.RWMutex
	summaries map[string]venuesummary.Summary
}

func NewVenueSummaryRepository(summaries map[string]venuesummary.Summary) *VenueSummaryRepository {
	copied := make(map[string]venuesummary.Summary, len(summaries))
	for venueID, s := range summaries {
		copied[venueID] = s
	}
	return &VenueSummaryRepository{summaries: copied}
}

func (r *VenueSummaryRepository) GetByVenue(_ context.Context, venueID string) (venuesummary.Summary, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.summaries[venueID]
	return s, ok, nil
}
