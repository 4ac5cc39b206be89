package memory

import (
	"fmt"

	"github.com/riskibarqy/venue-insight/internal/domain/match"
	"github.com/riskibarqy/venue-insight/internal/domain/playerperformance"
	"github.com/riskibarqy/venue-insight/internal/domain/teamperformance"
	"github.com/riskibarqy/venue-insight/internal/domain/venue"
	"github.com/riskibarqy/venue-insight/internal/domain/venuesummary"
)

// Dataset is the full set of reference tables loaded at startup.
type Dataset struct {
	Version           string
	Venues            []venue.Venue
	Summaries         map[string]venuesummary.Summary
	Matches           map[string][]match.Match
	TeamPerformance   map[string][]teamperformance.Record
	PlayerPerformance map[string][]playerperformance.Record
}

func SeedDataset() Dataset {
	return Dataset{
		Version:           SeedDatasetVersion,
		Venues:            SeedVenues(),
		Summaries:         SeedVenueSummaries(),
		Matches:           SeedMatches(),
		TeamPerformance:   SeedTeamPerformance(),
		PlayerPerformance: SeedPlayerPerformance(),
	}
}

// Validate checks every record so bad reference data fails at startup.
func (d Dataset) Validate() error {
	seen := make(map[string]struct{}, len(d.Venues))
	for _, v := range d.Venues {
		if err := v.Validate(); err != nil {
			return err
		}
		if _, dup := seen[v.ID]; dup {
			return fmt.Errorf("duplicate venue id %q", v.ID)
		}
		seen[v.ID] = struct{}{}
	}

	for venueID, s := range d.Summaries {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("venue summary %s: %w", venueID, err)
		}
	}
	for venueID, items := range d.Matches {
		ids := make(map[string]struct{}, len(items))
		for _, m := range items {
			if err := m.Validate(); err != nil {
				return fmt.Errorf("venue matches %s: %w", venueID, err)
			}
			if _, dup := ids[m.ID]; dup {
				return fmt.Errorf("venue matches %s: duplicate match id %q", venueID, m.ID)
			}
			ids[m.ID] = struct{}{}
		}
	}
	for venueID, items := range d.TeamPerformance {
		for _, r := range items {
			if err := r.Validate(); err != nil {
				return fmt.Errorf("venue team performance %s: %w", venueID, err)
			}
		}
	}
	for venueID, items := range d.PlayerPerformance {
		for _, r := range items {
			if err := r.Validate(); err != nil {
				return fmt.Errorf("venue player performance %s: %w", venueID, err)
			}
		}
	}

	return nil
}
