package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/venue-insight/internal/domain/venue"
	"github.com/riskibarqy/venue-insight/internal/infrastructure/repository/memory"
	venuemock "github.com/riskibarqy/venue-insight/internal/mocks/domain/venue"
	"github.com/stretchr/testify/mock"
)

func TestVenueService_ListVenues_GroupedOrder(t *testing.T) {
	t.Parallel()

	service := NewVenueService(memory.NewVenueRepository(memory.SeedVenues()))

	got, err := service.ListVenues(context.Background())
	if err != nil {
		t.Fatalf("list venues: %v", err)
	}
	if len(got) != 10 {
		t.Fatalf("unexpected venue count: got=%d want=10", len(got))
	}

	wantPrefix := []string{"mcg", "scg", "gabba", "lords", "oval", "wankhede"}
	for i, id := range wantPrefix {
		if got[i].ID != id {
			t.Fatalf("unexpected venue at %d: got=%s want=%s", i, got[i].ID, id)
		}
	}
	if got[len(got)-1].ID != "wanderers" {
		t.Fatalf("unexpected last venue: got=%s want=wanderers", got[len(got)-1].ID)
	}
}

func TestVenueService_ListVenuesByCountry(t *testing.T) {
	t.Parallel()

	service := NewVenueService(memory.NewVenueRepository(memory.SeedVenues()))

	groups, err := service.ListVenuesByCountry(context.Background())
	if err != nil {
		t.Fatalf("list venues by country: %v", err)
	}

	want := []struct {
		country string
		count   int
	}{
		{"Australia", 3},
		{"England", 2},
		{"India", 4},
		{"South Africa", 1},
	}
	if len(groups) != len(want) {
		t.Fatalf("unexpected group count: got=%d want=%d", len(groups), len(want))
	}
	for i, w := range want {
		if groups[i].Country != w.country || len(groups[i].Venues) != w.count {
			t.Fatalf("unexpected group %d: got=%s/%d want=%s/%d", i, groups[i].Country, len(groups[i].Venues), w.country, w.count)
		}
	}
}

func TestVenueService_GetVenue_NotFoundUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	venueRepo := venuemock.NewRepository(t)
	venueRepo.
		On("GetByID", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), "atlantis").
		Return(venue.Venue{}, false, nil).
		Once()

	service := NewVenueService(venueRepo)
	_, err := service.GetVenue(ctx, " atlantis ")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestVenueService_GetVenue_RequiresID(t *testing.T) {
	t.Parallel()

	service := NewVenueService(venuemock.NewRepository(t))
	_, err := service.GetVenue(context.Background(), "  ")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestVenueService_ListVenues_RepositoryError(t *testing.T) {
	t.Parallel()

	repoErr := errors.New("catalog offline")
	venueRepo := venuemock.NewRepository(t)
	venueRepo.On("List", mock.Anything).Return(nil, repoErr).Once()

	service := NewVenueService(venueRepo)
	_, err := service.ListVenues(context.Background())
	if !errors.Is(err, repoErr) {
		t.Fatalf("expected wrapped repository error, got %v", err)
	}
	if !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable mark, got %v", err)
	}
}
