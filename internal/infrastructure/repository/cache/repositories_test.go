package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/venue-insight/internal/domain/match"
	"github.com/riskibarqy/venue-insight/internal/domain/venuesummary"
	"github.com/riskibarqy/venue-insight/internal/infrastructure/repository/memory"
	basecache "github.com/riskibarqy/venue-insight/internal/platform/cache"
)

type countingMatchRepo struct {
	calls int
	err   error
	next  match.Repository
}

func (r *countingMatchRepo) ListByVenue(ctx context.Context, venueID string) ([]match.Match, bool, error) {
	r.calls++
	if r.err != nil {
		return nil, false, r.err
	}
	return r.next.ListByVenue(ctx, venueID)
}

func TestMatchRepository_CachesHitsAndMisses(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	inner := &countingMatchRepo{next: memory.NewMatchRepository(memory.SeedMatches())}
	repo := NewMatchRepository(inner, basecache.NewStore(time.Minute))

	for i := 0; i < 3; i++ {
		items, ok, err := repo.ListByVenue(ctx, memory.VenueIDEdenGardens)
		if err != nil || !ok || len(items) != 3 {
			t.Fatalf("unexpected cached result: len=%d ok=%v err=%v", len(items), ok, err)
		}
	}
	for i := 0; i < 2; i++ {
		items, ok, err := repo.ListByVenue(ctx, "gabba")
		if err != nil || ok || len(items) != 0 {
			t.Fatalf("unexpected cached miss: len=%d ok=%v err=%v", len(items), ok, err)
		}
	}

	if inner.calls != 2 {
		t.Fatalf("unexpected inner calls: got=%d want=2", inner.calls)
	}
}

func TestMatchRepository_CopiesCachedRows(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMatchRepository(memory.NewMatchRepository(memory.SeedMatches()), basecache.NewStore(time.Minute))

	first, _, _ := repo.ListByVenue(ctx, memory.VenueIDWankhede)
	first[0].ID = "mutated"

	second, _, _ := repo.ListByVenue(ctx, memory.VenueIDWankhede)
	if second[0].ID != "m1" {
		t.Fatalf("cached rows mutated through returned slice")
	}
}

func TestMatchRepository_ErrorsAreNotCached(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	inner := &countingMatchRepo{err: errors.New("backend down")}
	repo := NewMatchRepository(inner, basecache.NewStore(time.Minute))

	if _, _, err := repo.ListByVenue(ctx, "mcg"); err == nil {
		t.Fatalf("expected error")
	}
	inner.err = nil
	inner.next = memory.NewMatchRepository(memory.SeedMatches())
	if _, _, err := repo.ListByVenue(ctx, "mcg"); err != nil {
		t.Fatalf("unexpected error after recovery: %v", err)
	}
	if inner.calls != 2 {
		t.Fatalf("unexpected inner calls: got=%d want=2", inner.calls)
	}
}

func TestVenueSummaryRepository_KeepsNotFound(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewVenueSummaryRepository(memory.NewVenueSummaryRepository(memory.SeedVenueSummaries()), basecache.NewStore(time.Minute))

	if _, ok, err := repo.GetByVenue(ctx, "oval"); ok || err != nil {
		t.Fatalf("expected cached not-found: ok=%v err=%v", ok, err)
	}
	s, ok, err := repo.GetByVenue(ctx, memory.VenueIDLords)
	if err != nil || !ok || s.PitchBehavior != venuesummary.PitchBowling {
		t.Fatalf("unexpected lords summary: %+v ok=%v err=%v", s, ok, err)
	}
}
