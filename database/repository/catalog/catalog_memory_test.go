package catalogRepo

import (
	"context"
	"testing"

	"findmylocal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedServices(t *testing.T) {
	services := SeedServices()
	require.Len(t, services, 15)

	seen := map[string]bool{}
	for _, s := range services {
		assert.False(t, seen[s.ID], "duplicate id %s", s.ID)
		seen[s.ID] = true
		assert.NoError(t, s.Pricing.Validate(), s.ID)
		assert.Equal(t, s.Provider.Phone, s.Provider.WhatsApp)
	}
}

func TestMemoryCatalogRepo_ListReturnsCopies(t *testing.T) {
	repo := NewMemoryCatalogRepo(SeedServices())
	ctx := context.Background()

	first, err := repo.List(ctx)
	require.NoError(t, err)
	first[0].Tags[0] = "mutated"
	first[0].Status = models.StatusPending

	second, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Emergency", second[0].Tags[0])
	assert.Equal(t, models.StatusApproved, second[0].Status)
}

func TestMemoryCatalogRepo_GetByID(t *testing.T) {
	repo := NewMemoryCatalogRepo(SeedServices())
	ctx := context.Background()

	s, err := repo.GetByID(ctx, "7")
	require.NoError(t, err)
	assert.Equal(t, "Physics & Chemistry Coaching", s.Name)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryCatalogRepo_Mutations(t *testing.T) {
	repo := NewMemoryCatalogRepo(SeedServices())
	ctx := context.Background()
	v0 := repo.Version()

	ok, err := repo.UpdateStatus(ctx, "3", models.StatusApproved)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Greater(t, repo.Version(), v0)

	s, _ := repo.GetByID(ctx, "3")
	assert.Equal(t, models.StatusApproved, s.Status)
	assert.Equal(t, models.AvailabilityAvailable, s.Availability)

	v1 := repo.Version()
	ok, err = repo.UpdateStatus(ctx, "nope", models.StatusRejected)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, v1, repo.Version())

	ok, err = repo.SetVerified(ctx, "3")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Delete(ctx, "3")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Delete(ctx, "3")
	require.NoError(t, err)
	assert.False(t, ok)

	all, _ := repo.List(ctx)
	assert.Len(t, all, 14)
	assert.Equal(t, "2", all[1].ID)
	assert.Equal(t, "4", all[2].ID)
}
