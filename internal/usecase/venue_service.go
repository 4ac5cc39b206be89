package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/venue-insight/internal/domain/venue"
)

type VenueService struct {
	venueRepo venue.Repository
}

func NewVenueService(venueRepo venue.Repository) *VenueService {
	return &VenueService{venueRepo: venueRepo}
}

// ListVenues returns the catalog in grouped order: countries sorted by name,
// insertion order inside each country.
func (s *VenueService) ListVenues(ctx context.Context) ([]venue.Venue, error) {
	groups, err := s.ListVenuesByCountry(ctx)
	if err != nil {
		return nil, err
	}
	return venue.Flatten(groups), nil
}

func (s *VenueService) ListVenuesByCountry(ctx context.Context) ([]venue.CountryGroup, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.VenueService.ListVenuesByCountry")
	defer span.End()

	items, err := s.venueRepo.List(ctx)
	if err != nil {
		return nil, unavailable(err, "list venues")
	}
	return venue.GroupByCountry(items), nil
}

func (s *VenueService) GetVenue(ctx context.Context, venueID string) (venue.Venue, error) {
	ctx, span := startVenueSpan(ctx, "usecase.VenueService.GetVenue", venueID)
	defer span.End()

	venueID, err := normalizeVenueID(venueID)
	if err != nil {
		return venue.Venue{}, err
	}

	item, exists, err := s.venueRepo.GetByID(ctx, venueID)
	if err != nil {
		return venue.Venue{}, unavailable(err, "get venue venue=%s", venueID)
	}
	if !exists {
		return venue.Venue{}, errors.Wrapf(ErrNotFound, "venue=%s", venueID)
	}
	return item, nil
}
