package catalog

import (
	"context"
	"testing"

	catalogRepo "findmylocal/database/repository/catalog"
	"findmylocal/models"
	"findmylocal/services/events"
	"findmylocal/utils"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(t *testing.T, services []models.Service) (*DefaultCatalogService, *events.Recorder) {
	t.Helper()
	recorder := &events.Recorder{}
	repo := catalogRepo.NewMemoryCatalogRepo(services)
	return NewCatalogService(repo, recorder, utils.NewMetricsManager("test"), zap.NewNop()), recorder
}

func TestUpdateServiceStatus(t *testing.T) {
	seed := catalogRepo.SeedServices()
	seed[2].Status = models.StatusPending
	s, recorder := newTestService(t, seed)
	ctx := context.Background()

	before, err := s.GetService(ctx, "3")
	require.NoError(t, err)

	ok, err := s.UpdateServiceStatus(ctx, "3", "Rejected")
	require.NoError(t, err)
	assert.True(t, ok)

	after, err := s.GetService(ctx, "3")
	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, after.Status)
	before.Status = models.StatusRejected
	assert.Equal(t, before, after)

	approved, err := s.AdminListServices(ctx, models.Filters{Status: []string{"Approved"}})
	require.NoError(t, err)
	assert.NotContains(t, ids(approved), "3")

	assert.Equal(t, []string{events.SubjectServiceStatusChanged}, recorder.Subjects())
}

func TestUpdateServiceStatus_Idempotent(t *testing.T) {
	once, _ := newTestService(t, catalogRepo.SeedServices())
	twice, _ := newTestService(t, catalogRepo.SeedServices())
	ctx := context.Background()

	_, err := once.UpdateServiceStatus(ctx, "6", "Approved")
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		_, err := twice.UpdateServiceStatus(ctx, "6", "Approved")
		require.NoError(t, err)
	}

	a, _ := once.Repo.List(ctx)
	b, _ := twice.Repo.List(ctx)
	assert.Equal(t, a, b)
}

func TestUpdateServiceStatus_InvalidAndUnknown(t *testing.T) {
	s, recorder := newTestService(t, catalogRepo.SeedServices())
	ctx := context.Background()

	ok, err := s.UpdateServiceStatus(ctx, "3", "Archived")
	assert.ErrorIs(t, err, ErrInvalidStatus)
	assert.False(t, ok)

	ok, err = s.UpdateServiceStatus(ctx, "999", "Approved")
	assert.NoError(t, err)
	assert.False(t, ok)

	assert.Empty(t, recorder.Subjects())
}

func TestDeleteService_RemovesFromEveryView(t *testing.T) {
	s, recorder := newTestService(t, catalogRepo.SeedServices())
	ctx := context.Background()

	// Warm the memo so deletion must invalidate it.
	all, err := s.ListServices(ctx, models.Filters{})
	require.NoError(t, err)
	require.Contains(t, ids(all), "4")

	ok, err := s.DeleteService(ctx, "4")
	require.NoError(t, err)
	assert.True(t, ok)

	for _, f := range []models.Filters{
		{},
		{Categories: []string{"Mechanic"}},
		{Locations: []string{"Powai"}},
		{Availability: []string{"Busy"}},
		{Query: "car"},
	} {
		got, err := s.ListServices(ctx, f)
		require.NoError(t, err)
		assert.NotContains(t, ids(got), "4")

		got, err = s.AdminListServices(ctx, f)
		require.NoError(t, err)
		assert.NotContains(t, ids(got), "4")
	}

	_, err = s.GetService(ctx, "4")
	assert.ErrorIs(t, err, ErrServiceNotFound)

	ok, err = s.DeleteService(ctx, "4")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, []string{events.SubjectServiceDeleted}, recorder.Subjects())
}

func TestVerifyService(t *testing.T) {
	seed := catalogRepo.SeedServices()
	seed[0].Provider.Verified = false
	s, recorder := newTestService(t, seed)
	ctx := context.Background()

	ok, err := s.VerifyService(ctx, "1")
	require.NoError(t, err)
	assert.True(t, ok)

	got, _ := s.GetService(ctx, "1")
	assert.True(t, got.Provider.Verified)

	ok, err = s.VerifyService(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, []string{events.SubjectServiceVerified}, recorder.Subjects())
}

func TestListServices_IgnoresStatusButAdminHonoursIt(t *testing.T) {
	s, _ := newTestService(t, catalogRepo.SeedServices())
	ctx := context.Background()
	f := models.Filters{Status: []string{"Rejected"}}

	public, err := s.ListServices(ctx, f)
	require.NoError(t, err)
	assert.Len(t, public, 15)

	admin, err := s.AdminListServices(ctx, f)
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "6", "9", "12"}, ids(admin))
}

func TestListServices_Memoizes(t *testing.T) {
	s, _ := newTestService(t, catalogRepo.SeedServices())
	ctx := context.Background()

	_, err := s.ListServices(ctx, models.Filters{Categories: []string{"Tutor", "Plumber"}})
	require.NoError(t, err)
	got, err := s.ListServices(ctx, models.Filters{Categories: []string{"Plumber", "Tutor"}})
	require.NoError(t, err)

	assert.Equal(t, []string{"1", "2", "7", "10"}, ids(got))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.Metrics.FilterMemoHitsTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.Metrics.FilterMemoMissesTotal))

	// Results handed out are copies.
	got[0].Name = "changed"
	again, _ := s.ListServices(ctx, models.Filters{Categories: []string{"Tutor", "Plumber"}})
	assert.Equal(t, "Professional Plumbing & Leak Repair", again[0].Name)
}

func TestView_DropsOnVersionChange(t *testing.T) {
	v := NewView(4)
	f := models.Filters{Query: "x"}
	v.Store(1, f, []models.Service{{ID: "1"}})

	_, ok := v.Lookup(1, f)
	assert.True(t, ok)
	_, ok = v.Lookup(2, f)
	assert.False(t, ok)

	v.Store(2, models.Filters{}, nil)
	assert.Equal(t, 1, v.Len())
	_, ok = v.Lookup(1, f)
	assert.False(t, ok)

	// Stale results are discarded.
	v.Store(1, f, []models.Service{{ID: "stale"}})
	_, ok = v.Lookup(1, f)
	assert.False(t, ok)
}

func TestFacets(t *testing.T) {
	s, _ := newTestService(t, nil)
	f := s.Facets()
	assert.Len(t, f.Categories, 8)
	assert.Contains(t, f.Locations, "Santa Cruz")
	assert.Equal(t, []models.Availability{"Available", "Busy", "Offline"}, f.Availability)
	assert.Equal(t, []models.ServiceStatus{"Pending", "Approved", "Rejected"}, f.Statuses)
}
