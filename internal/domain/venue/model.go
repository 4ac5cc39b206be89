package venue

import "fmt"

// Venue is a physical cricket ground with static reference metadata.
type Venue struct {
	ID       string
	Name     string
	Location string
	Country  string
	Capacity int
}

func (v Venue) Validate() error {
	if v.ID == "" {
		return fmt.Errorf("venue id is required")
	}
	if v.Name == "" {
		return fmt.Errorf("venue name is required: venue=%s", v.ID)
	}
	if v.Country == "" {
		return fmt.Errorf("venue country is required: venue=%s", v.ID)
	}
	if v.Capacity <= 0 {
		return fmt.Errorf("venue capacity must be positive: venue=%s capacity=%d", v.ID, v.Capacity)
	}

	return nil
}
