package user

import (
	"context"
	"fmt"
	"testing"

	storageRepo "findmylocal/database/repository/storage"
	"findmylocal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService() *DefaultUserService {
	return NewUserService(storageRepo.NewMemoryStore(), zap.NewNop())
}

func TestFavorites(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	favs, err := s.Favorites(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, []string{}, favs)

	added, err := s.AddFavorite(ctx, "c1", "3")
	require.NoError(t, err)
	assert.True(t, added)
	added, err = s.AddFavorite(ctx, "c1", "3")
	require.NoError(t, err)
	assert.False(t, added)
	_, err = s.AddFavorite(ctx, "c1", "9")
	require.NoError(t, err)

	favs, _ = s.Favorites(ctx, "c1")
	assert.Equal(t, []string{"3", "9"}, favs)

	removed, err := s.RemoveFavorite(ctx, "c1", "3")
	require.NoError(t, err)
	assert.True(t, removed)
	removed, err = s.RemoveFavorite(ctx, "c1", "3")
	require.NoError(t, err)
	assert.False(t, removed)

	favs, _ = s.Favorites(ctx, "c1")
	assert.Equal(t, []string{"9"}, favs)
}

func TestPreferences(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	prefs, err := s.Preferences(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, &models.Preferences{Theme: "dark"}, prefs)

	light := "light"
	done := true
	prefs, err = s.UpdatePreferences(ctx, "c1", models.PreferencesUpdate{Theme: &light, OnboardingCompleted: &done})
	require.NoError(t, err)
	assert.Equal(t, &models.Preferences{Theme: "light", OnboardingCompleted: true}, prefs)

	raw, _ := s.Store.Get(ctx, "c1", storageRepo.KeyOnboardingCompleted)
	assert.Equal(t, `"true"`, string(raw))

	pink := "pink"
	_, err = s.UpdatePreferences(ctx, "c1", models.PreferencesUpdate{Theme: &pink})
	assert.ErrorIs(t, err, ErrInvalidTheme)

	notDone := false
	prefs, err = s.UpdatePreferences(ctx, "c1", models.PreferencesUpdate{OnboardingCompleted: &notDone})
	require.NoError(t, err)
	assert.Equal(t, &models.Preferences{Theme: "light"}, prefs)
}

func TestRecentSearches(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	for i := 0; i < 12; i++ {
		require.NoError(t, s.RecordSearch(ctx, "c1", fmt.Sprintf("q%d", i)))
	}
	require.NoError(t, s.RecordSearch(ctx, "c1", "  "))
	require.NoError(t, s.RecordSearch(ctx, "c1", "Q5"))

	got, err := s.RecentSearches(ctx, "c1", 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"Q5", "q11", "q10", "q9", "q8"}, got)

	all, _ := s.RecentSearches(ctx, "c1", 0)
	assert.Len(t, all, maxRecentSearches)

	require.NoError(t, s.ClearRecentSearches(ctx, "c1"))
	got, _ = s.RecentSearches(ctx, "c1", 5)
	assert.Empty(t, got)
}

func TestSession(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	_, err := s.Session(ctx, "c1")
	assert.ErrorIs(t, err, ErrNoSession)

	require.NoError(t, s.SetSession(ctx, "c1", models.UserSession{Email: "a@b.co", Role: models.RoleAdmin}))
	got, err := s.Session(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "admin", got.Role)

	require.NoError(t, s.ClearSession(ctx, "c1"))
	_, err = s.Session(ctx, "c1")
	assert.ErrorIs(t, err, ErrNoSession)
}

// conflictStore feeds fn a stale snapshot first, then lets another writer
// land before the real update runs.
type conflictStore struct {
	storageRepo.Store
	stale []byte
	other func()
}

func (s *conflictStore) Update(ctx context.Context, clientID, key string, fn storageRepo.UpdateFunc) error {
	if s.stale != nil {
		stale := s.stale
		s.stale = nil
		if _, _, err := fn(stale); err != nil {
			return err
		}
		s.other()
	}
	return s.Store.Update(ctx, clientID, key, fn)
}

func TestFavorites_RetryReportsFinalOutcome(t *testing.T) {
	ctx := context.Background()

	t.Run("remove after concurrent removal", func(t *testing.T) {
		base := storageRepo.NewMemoryStore()
		require.NoError(t, base.Set(ctx, "c1", storageRepo.KeyFavorites, []byte(`["3"]`)))
		s := NewUserService(&conflictStore{
			Store: base,
			stale: []byte(`["3"]`),
			other: func() {
				require.NoError(t, base.Set(ctx, "c1", storageRepo.KeyFavorites, []byte(`[]`)))
			},
		}, zap.NewNop())

		removed, err := s.RemoveFavorite(ctx, "c1", "3")
		require.NoError(t, err)
		assert.False(t, removed)
	})

	t.Run("add after concurrent add", func(t *testing.T) {
		base := storageRepo.NewMemoryStore()
		s := NewUserService(&conflictStore{
			Store: base,
			stale: []byte(`[]`),
			other: func() {
				require.NoError(t, base.Set(ctx, "c1", storageRepo.KeyFavorites, []byte(`["3"]`)))
			},
		}, zap.NewNop())

		added, err := s.AddFavorite(ctx, "c1", "3")
		require.NoError(t, err)
		assert.False(t, added)

		favs, err := s.Favorites(ctx, "c1")
		require.NoError(t, err)
		assert.Equal(t, []string{"3"}, favs)
	})
}
