package cache

import (
	"context"

	"github.com/riskibarqy/venue-insight/internal/domain/match"
	"github.com/riskibarqy/venue-insight/internal/domain/playerperformance"
	"github.com/riskibarqy/venue-insight/internal/domain/teamperformance"
	"github.com/riskibarqy/venue-insight/internal/domain/venue"
	"github.com/riskibarqy/venue-insight/internal/domain/venuesummary"
	basecache "github.com/riskibarqy/venue-insight/internal/platform/cache"
)

// found keeps the exists flag next to the value so misses are cached too.
type found[T any] struct {
	value  T
	exists bool
}

func loadFound[T any](
	ctx context.Context,
	store *basecache.Store,
	key string,
	load func(context.Context) (T, bool, error),
) (T, bool, error) {
	got, err := basecache.Load(ctx, store, key, func(ctx context.Context) (found[T], error) {
		value, exists, err := load(ctx)
		return found[T]{value: value, exists: exists}, err
	})
	if err != nil {
		var zero T
		return zero, false, err
	}
	return got.value, got.exists, nil
}

func loadList[T any](
	ctx context.Context,
	store *basecache.Store,
	key string,
	load func(context.Context) ([]T, bool, error),
) ([]T, bool, error) {
	items, exists, err := loadFound(ctx, store, key, func(ctx context.Context) ([]T, bool, error) {
		items, exists, err := load(ctx)
		return append([]T(nil), items...), exists, err
	})
	if err != nil {
		return nil, false, err
	}
	return append(make([]T, 0, len(items)), items...), exists, nil
}

type VenueRepository struct {
	next  venue.Repository
	cache *basecache.Store
}

func NewVenueRepository(next venue.Repository, cache *basecache.Store) *VenueRepository {
	return &VenueRepository{next: next, cache: cache}
}

func (r *VenueRepository) List(ctx context.Context) ([]venue.Venue, error) {
	items, _, err := loadList(ctx, r.cache, basecache.Key("venue", "list"), func(ctx context.Context) ([]venue.Venue, bool, error) {
		items, err := r.next.List(ctx)
		return items, true, err
	})
	return items, err
}

func (r *VenueRepository) GetByID(ctx context.Context, venueID string) (venue.Venue, bool, error) {
	return loadFound(ctx, r.cache, basecache.Key("venue", "id", venueID), func(ctx context.Context) (venue.Venue, bool, error) {
		return r.next.GetByID(ctx, venueID)
	})
}

type VenueSummaryRepository struct {
	next  venuesummary.Repository
	cache *basecache.Store
}

func NewVenueSummaryRepository(next venuesummary.Repository, cache *basecache.Store) *VenueSummaryRepository {
	return &VenueSummaryRepository{next: next, cache: cache}
}

func (r *VenueSummaryRepository) GetByVenue(ctx context.Context, venueID string) (venuesummary.Summary, bool, error) {
	return loadFound(ctx, r.cache, basecache.Key("summary", "venue", venueID), func(ctx context.Context) (venuesummary.Summary, bool, error) {
		return r.next.GetByVenue(ctx, venueID)
	})
}

type MatchRepository struct {
	next  match.Repository
	cache *basecache.Store
}

func NewMatchRepository(next match.Repository, cache *basecache.Store) *MatchRepository {
	return &MatchRepository{next: next, cache: cache}
}

func (r *MatchRepository) ListByVenue(ctx context.Context, venueID string) ([]match.Match, bool, error) {
	return loadList(ctx, r.cache, basecache.Key("match", "venue", venueID), func(ctx context.Context) ([]match.Match, bool, error) {
		return r.next.ListByVenue(ctx, venueID)
	})
}

type TeamPerformanceRepository struct {
	next  teamperformance.Repository
	cache *basecache.Store
}

func NewTeamPerformanceRepository(next teamperformance.Repository, cache *basecache.Store) *TeamPerformanceRepository {
	return &TeamPerformanceRepository{next: next, cache: cache}
}

func (r *TeamPerformanceRepository) ListByVenue(ctx context.Context, venueID string) ([]teamperformance.Record, bool, error) {
	return loadList(ctx, r.cache, basecache.Key("team-performance", "venue", venueID), func(ctx context.Context) ([]teamperformance.Record, bool, error) {
		return r.next.ListByVenue(ctx, venueID)
	})
}

type PlayerPerformanceRepository struct {
	next  playerperformance.Repository
	cache *basecache.Store
}

func NewPlayerPerformanceRepository(next playerperformance.Repository, cache *basecache.Store) *PlayerPerformanceRepository {
	return &PlayerPerformanceRepository{next: next, cache: cache}
}

func (r *PlayerPerformanceRepository) ListByVenue(ctx context.Context, venueID string) ([]playerperformance.Record, bool, error) {
	return loadList(ctx, r.cache, basecache.Key("player-performance", "venue", venueID), func(ctx context.Context) ([]playerperformance.Record, bool, error) {
		return r.next.ListByVenue(ctx, venueID)
	})
}
