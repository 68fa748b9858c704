package catalog

import (
	"math/rand"
	"testing"

	catalogRepo "findmylocal/database/repository/catalog"
	"findmylocal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func svc(id string, category models.Category, location string, availability models.Availability, status models.ServiceStatus, tags ...string) models.Service {
	return models.Service{
		ID:           id,
		Name:         "Service " + id,
		Category:     category,
		Location:     location,
		Availability: availability,
		Status:       status,
		Tags:         tags,
		Pricing:      models.FixedPrice(100, "per visit"),
	}
}

func ids(services []models.Service) []string {
	out := make([]string, len(services))
	for i, s := range services {
		out[i] = s.ID
	}
	return out
}

func TestEvaluate_CategoryPreservesOrder(t *testing.T) {
	c := []models.Service{
		svc("a", models.CategoryPlumber, "Andheri West, Mumbai", models.AvailabilityAvailable, models.StatusApproved),
		svc("b", models.CategoryTutor, "Bandra, Mumbai", models.AvailabilityAvailable, models.StatusApproved),
		svc("c", models.CategoryPlumber, "Powai, Mumbai", models.AvailabilityBusy, models.StatusPending),
	}
	got := Evaluate(c, models.Filters{Categories: []string{"Plumber"}})
	assert.Equal(t, []string{"a", "c"}, ids(got))
}

func TestEvaluate_NoFiltersIsIdentity(t *testing.T) {
	c := catalogRepo.SeedServices()
	got := Evaluate(c, models.Filters{})
	assert.Equal(t, c, got)

	empty := Evaluate(nil, models.Filters{})
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestEvaluate_Query(t *testing.T) {
	c := catalogRepo.SeedServices()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"name is case-insensitive", "PLUMBING", []string{"1"}},
		{"category", "tutor", []string{"2", "7"}},
		{"location", "navi", []string{"8"}},
		{"tag", "jee", []string{"7"}},
		{"no match", "astronaut", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(c, models.Filters{Query: tt.query})
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestEvaluate_LocationIsSubstringAndCaseSensitive(t *testing.T) {
	c := catalogRepo.SeedServices()

	got := Evaluate(c, models.Filters{Locations: []string{"Bandra"}})
	assert.Equal(t, []string{"3", "13"}, ids(got))

	got = Evaluate(c, models.Filters{Locations: []string{"bandra"}})
	assert.Empty(t, got)

	got = Evaluate(c, models.Filters{Locations: []string{"Dadar", "Powai"}})
	assert.Equal(t, []string{"4", "9", "12", "14"}, ids(got))
}

func TestEvaluate_Conjunction(t *testing.T) {
	c := catalogRepo.SeedServices()
	f := models.Filters{
		Query:        "repair",
		Categories:   []string{"Electrician", "Mechanic"},
		Availability: []string{"Available"},
		Status:       []string{"Approved"},
	}
	got := Evaluate(c, f)
	assert.Equal(t, []string{"8", "14", "15"}, ids(got))
	for _, s := range got {
		assert.True(t, Matches(s, f))
	}
}

func TestEvaluate_SubsequenceAndOrderInvariance(t *testing.T) {
	c := catalogRepo.SeedServices()
	rng := rand.New(rand.NewSource(7))
	pool := map[string][]string{
		"category":     {"Plumber", "Electrician", "Tutor", "Mechanic", "Cleaner", "Gardener"},
		"location":     {"Bandra", "Powai", "Dadar", "Thane", "Malad"},
		"availability": {"Available", "Busy", "Offline"},
		"status":       {"Pending", "Approved", "Rejected"},
	}
	pick := func(values []string) []string {
		var out []string
		for _, v := range values {
			if rng.Intn(2) == 0 {
				out = append(out, v)
			}
		}
		return out
	}
	shuffled := func(values []string) []string {
		out := append([]string(nil), values...)
		rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
		return out
	}

	for i := 0; i < 200; i++ {
		f := models.Filters{
			Categories:   pick(pool["category"]),
			Locations:    pick(pool["location"]),
			Availability: pick(pool["availability"]),
			Status:       pick(pool["status"]),
		}
		got := Evaluate(c, f)

		// Subsequence of the catalog in original order.
		j := 0
		for _, s := range got {
			for j < len(c) && c[j].ID != s.ID {
				j++
			}
			require.Less(t, j, len(c), "result is not a subsequence")
			j++
		}

		g := models.Filters{
			Categories:   shuffled(f.Categories),
			Locations:    shuffled(f.Locations),
			Availability: shuffled(f.Availability),
			Status:       shuffled(f.Status),
		}
		assert.Equal(t, ids(got), ids(Evaluate(c, g)))
		assert.Equal(t, f.Key(), g.Key())
	}
}

func TestFilters_ActiveAndClear(t *testing.T) {
	f := models.Filters{Query: "plumb"}
	assert.False(t, f.HasActiveFilters())

	f.Locations = []string{"Bandra"}
	assert.True(t, f.HasActiveFilters())

	f.Clear()
	assert.False(t, f.HasActiveFilters())
	assert.Equal(t, "plumb", f.Query)
}
