package teamperformance

import "fmt"

// Record is one team's aggregate record at a venue.
type Record struct {
	Team     string
	Matches  int
	Wins     int
	Losses   int
	AvgScore float64
}

func (r Record) Validate() error {
	if r.Team == "" {
		return fmt.Errorf("team name is required")
	}
	if r.Matches < 0 || r.Wins < 0 || r.Losses < 0 {
		return fmt.Errorf("team counts must be non-negative: team=%s", r.Team)
	}
	if r.Wins+r.Losses > r.Matches {
		return fmt.Errorf("team wins+losses exceed matches: team=%s wins=%d losses=%d matches=%d", r.Team, r.Wins, r.Losses, r.Matches)
	}

	return nil
}
