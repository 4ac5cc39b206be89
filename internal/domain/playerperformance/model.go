package playerperformance

import "fmt"

// Record is one player's aggregate record at a venue. AvgEconomy is nil when
// the player did not bowl, which is distinct from an economy of zero.
type Record struct {
	Player        string
	Team          string
	Matches       int
	Runs          int
	Wickets       int
	AvgStrikeRate float64
	AvgEconomy    *float64
}

func (r Record) Bowled() bool {
	return r.AvgEconomy != nil
}

func (r Record) Validate() error {
	if r.Player == "" {
		return fmt.Errorf("player name is required")
	}
	if r.Matches < 0 || r.Runs < 0 || r.Wickets < 0 {
		return fmt.Errorf("player counts must be non-negative: player=%s", r.Player)
	}

	return nil
}

// Economy returns a pointer to v, for literal seed data.
func Economy(v float64) *float64 {
	return &v
}
