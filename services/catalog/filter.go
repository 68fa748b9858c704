package catalog

import (
	"strings"

	"findmylocal/models"
)

// Matches reports whether s satisfies every active constraint of f.
func Matches(s models.Service, f models.Filters) bool {
	return matchesQuery(s, f.Query) &&
		inSet(string(s.Category), f.Categories) &&
		locationMatches(s.Location, f.Locations) &&
		inSet(string(s.Availability), f.Availability) &&
		inSet(string(s.Status), f.Status)
}

// Evaluate returns the services matching f in catalog order. The result is
// never nil and never aliases the input slice.
func Evaluate(services []models.Service, f models.Filters) []models.Service {
	out := make([]models.Service, 0, len(services))
	for _, s := range services {
		if Matches(s, f) {
			out = append(out, s)
		}
	}
	return out
}

// matchesQuery is a case-insensitive substring test against name, category,
// location and tags.
func matchesQuery(s models.Service, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(s.Name), q) ||
		strings.Contains(strings.ToLower(string(s.Category)), q) ||
		strings.Contains(strings.ToLower(s.Location), q) {
		return true
	}
	for _, tag := range s.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

func inSet(value string, set []string) bool {
	if len(set) == 0 {
		return true
	}
	for _, v := range set {
		if v == value {
			return true
		}
	}
	return false
}

// locationMatches is case-sensitive: "Bandra" selects "Bandra, Mumbai".
func locationMatches(location string, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, loc := range selected {
		if strings.Contains(location, loc) {
			return true
		}
	}
	return false
}
