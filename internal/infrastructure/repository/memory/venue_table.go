package memory

import "sync"

// venueTable stores rows keyed by venue id, keeping each venue's rows in
// insertion order.
type venueTable[T any] struct {
	mu   sync.RWMutex
	rows map[string][]T
}

func newVenueTable[T any](rows map[string][]T) *venueTable[T] {
	copied := make(map[string][]T, len(rows))
	for venueID, items := range rows {
		copied[venueID] = append([]T(nil), items...)
	}
	return &venueTable[T]{rows: copied}
}

func (t *venueTable[T]) list(venueID string) ([]T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	items, ok := t.rows[venueID]
	out := make([]T, 0, len(items))
	out = append(out, items...)
	return out, ok
}
