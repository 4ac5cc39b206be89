package usecase

import "github.com/riskibarqy/venue-insight/internal/domain/venuesummary"

// FallbackPolicy names what a query returns when the venue has no entry in
// the backing table.
type FallbackPolicy string

const (
	// FallbackNone means real data was found and nothing was substituted.
	FallbackNone FallbackPolicy = "none"
	// FallbackDefaultRecord substitutes venuesummary.Default().
	FallbackDefaultRecord FallbackPolicy = "default_record"
	// FallbackEmpty substitutes an empty, non-nil list.
	FallbackEmpty FallbackPolicy = "empty"
)

func summaryOrDefault(item venuesummary.Summary, exists bool) (venuesummary.Summary, FallbackPolicy) {
	if !exists {
		return venuesummary.Default(), FallbackDefaultRecord
	}
	return item, FallbackNone
}

func listOrEmpty[T any](items []T, exists bool) ([]T, FallbackPolicy) {
	if !exists {
		return []T{}, FallbackEmpty
	}
	if items == nil {
		items = []T{}
	}
	return items, FallbackNone
}
