package models

import (
	"sort"
	"strings"
)

// Filters is the set of user-selected constraints narrowing the catalog.
// An empty dimension (or empty Query) means "no constraint".
type Filters struct {
	Query        string   `json:"query" form:"q"`
	Categories   []string `json:"categories" form:"category"`
	Locations    []string `json:"locations" form:"location"`
	Availability []string `json:"availability" form:"availability"`
	Status       []string `json:"status" form:"status"`
}

// HasActiveFilters reports whether any set dimension is non-empty. The free-text
// query is tracked separately, as the filter chips do.
func (f Filters) HasActiveFilters() bool {
	return len(f.Categories) > 0 || len(f.Locations) > 0 || len(f.Availability) > 0 || len(f.Status) > 0
}

// Clear resets every set dimension and keeps the query.
func (f *Filters) Clear() {
	f.Categories = nil
	f.Locations = nil
	f.Availability = nil
	f.Status = nil
}

// WithoutStatus drops the moderation dimension; the public listing never filters on it.
func (f Filters) WithoutStatus() Filters {
	f.Status = nil
	return f
}

// Key is a canonical representation: equal for filters that differ only in the
// order (or duplication) of values within a dimension.
func (f Filters) Key() string {
	var b strings.Builder
	b.WriteString("q=")
	b.WriteString(f.Query)
	for _, dim := range []struct {
		name   string
		values []string
	}{
		{"c", f.Categories},
		{"l", f.Locations},
		{"a", f.Availability},
		{"s", f.Status},
	} {
		b.WriteString("|")
		b.WriteString(dim.name)
		b.WriteString("=")
		b.WriteString(strings.Join(canonical(dim.values), "\x1f"))
	}
	return b.String()
}

func canonical(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
