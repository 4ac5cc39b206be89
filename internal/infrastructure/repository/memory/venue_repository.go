package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/venue-insight/internal/domain/venue"
)

type VenueRepository struct {
	mu     sync.RWMutex
	venues []venue.Venue
	index  map[string]int
}

func NewVenueRepository(venues []venue.Venue) *VenueRepository {
	index := make(map[string]int, len(venues))
	items := make([]venue.Venue, 0, len(venues))
	for _, v := range venues {
		if _, exists := index[v.ID]; exists {
			continue
		}
		index[v.ID] = len(items)
		items = append(items, v)
	}

	return &VenueRepository{venues: items, index: index}
}

func (r *VenueRepository) List(_ context.Context) ([]venue.Venue, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]venue.Venue, 0, len(r.venues))
	out = append(out, r.venues...)
	return out, nil
}

func (r *VenueRepository) GetByID(_ context.Context, venueID string) (venue.Venue, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.index[venueID]
	if !ok {
		return venue.Venue{}, false, nil
	}
	return r.venues[idx], true, nil
}
