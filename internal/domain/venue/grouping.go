package venue

import "sort"

// CountryGroup holds the venues of one country in catalog order.
type CountryGroup struct {
	Country string
	Venues  []Venue
}

// GroupByCountry groups venues by country. Countries are sorted
// lexicographically; venues keep their catalog order inside a group.
func GroupByCountry(items []Venue) []CountryGroup {
	byCountry := make(map[string][]Venue)
	countries := make([]string, 0)
	for _, item := range items {
		if _, ok := byCountry[item.Country]; !ok {
			countries = append(countries, item.Country)
		}
		byCountry[item.Country] = append(byCountry[item.Country], item)
	}
	sort.Strings(countries)

	out := make([]CountryGroup, 0, len(countries))
	for _, country := range countries {
		out = append(out, CountryGroup{
			Country: country,
			Venues:  byCountry[country],
		})
	}

	return out
}

// Flatten returns the venues of all groups in group order.
func Flatten(groups []CountryGroup) []Venue {
	total := 0
	for _, g := range groups {
		total += len(g.Venues)
	}

	out := make([]Venue, 0, total)
	for _, g := range groups {
		out = append(out, g.Venues...)
	}
	return out
}
