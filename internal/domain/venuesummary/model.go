package venuesummary

import (
	"fmt"
	"math"
)

// PitchBehavior classifies a playing surface's tendency.
type PitchBehavior string

const (
	PitchBatting  PitchBehavior = "batting"
	PitchBowling  PitchBehavior = "bowling"
	PitchBalanced PitchBehavior = "balanced"
)

// WinPercentageTolerance bounds how far batting-first and chasing win
// percentages may drift from a sum of 100.
const WinPercentageTolerance = 0.1

func (p PitchBehavior) Valid() bool {
	switch p {
	case PitchBatting, PitchBowling, PitchBalanced:
		return true
	default:
		return false
	}
}

func (p PitchBehavior) Description() string {
	switch p {
	case PitchBatting:
		return "Batting-friendly pitch with high scores, flat surface, and minimal assistance for bowlers."
	case PitchBowling:
		return "Bowling-friendly pitch offering seam movement, bounce, and/or spin assistance."
	default:
		return "Balanced pitch offering something for both batsmen and bowlers throughout the match."
	}
}

// Summary is the aggregate scoring profile of one venue.
type Summary struct {
	AvgFirstInningsScore      float64
	AvgSecondInningsScore     float64
	BattingFirstWinPercentage float64
	ChasingWinPercentage      float64
	AvgRunRate                float64
	AvgWickets                float64
	PitchBehavior             PitchBehavior
	HighestTeamScore          int
	LowestTeamScore           int
}

func (s Summary) Validate() error {
	if !s.PitchBehavior.Valid() {
		return fmt.Errorf("invalid pitch behavior %q", s.PitchBehavior)
	}
	sum := s.BattingFirstWinPercentage + s.ChasingWinPercentage
	if math.Abs(sum-100) > WinPercentageTolerance {
		return fmt.Errorf("win percentages must sum to 100: got=%.2f", sum)
	}
	if s.HighestTeamScore < s.LowestTeamScore {
		return fmt.Errorf("highest team score %d below lowest %d", s.HighestTeamScore, s.LowestTeamScore)
	}

	return nil
}

// Default is substituted for venues without a summary entry.
func Default() Summary {
	return Summary{
		AvgFirstInningsScore:      165.5,
		AvgSecondInningsScore:     152.1,
		BattingFirstWinPercentage: 54.8,
		ChasingWinPercentage:      45.2,
		AvgRunRate:                8.28,
		AvgWickets:                7.5,
		PitchBehavior:             PitchBalanced,
		HighestTeamScore:          220,
		LowestTeamScore:           95,
	}
}
