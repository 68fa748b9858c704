package rating

import (
	"context"
	"testing"

	storageRepo "findmylocal/database/repository/storage"
	"findmylocal/models"
	"findmylocal/services/events"
	"findmylocal/utils"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newRedisBackedService(t *testing.T) (*DefaultRatingService, *events.Recorder) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})
	recorder := &events.Recorder{}
	return NewRatingService(storageRepo.NewRedisStore(client), recorder, utils.NewMetricsManager("test"), zap.NewNop()), recorder
}

func TestSubmitRating_Merges(t *testing.T) {
	s, recorder := newRedisBackedService(t)
	ctx := context.Background()

	require.NoError(t, s.SubmitRating(ctx, "c1", "5", 4))
	require.NoError(t, s.SubmitRating(ctx, "c1", "7", 2))

	got, err := s.Ratings(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, models.Ratings{"5": 4, "7": 2}, got)
	assert.Len(t, recorder.Subjects(), 2)
}

func TestSubmitRating_OverwritesOnlyTarget(t *testing.T) {
	s, _ := newRedisBackedService(t)
	ctx := context.Background()

	require.NoError(t, s.SubmitRating(ctx, "c1", "5", 4))
	require.NoError(t, s.SubmitRating(ctx, "c1", "7", 2))
	require.NoError(t, s.SubmitRating(ctx, "c1", "7", 5))

	got, err := s.Ratings(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, models.Ratings{"5": 4, "7": 5}, got)
}

func TestSubmitRating_RejectsOutOfRange(t *testing.T) {
	s, recorder := newRedisBackedService(t)
	ctx := context.Background()

	for _, r := range []int{0, 6, -1} {
		err := s.SubmitRating(ctx, "c1", "5", r)
		assert.ErrorIs(t, err, ErrInvalidRating)
	}
	assert.ErrorIs(t, s.SubmitRating(ctx, "c1", "", 3), ErrInvalidRating)

	got, err := s.Ratings(ctx, "c1")
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Empty(t, recorder.Subjects())
}

func TestRatings_IsolatedPerClient(t *testing.T) {
	s, _ := newRedisBackedService(t)
	ctx := context.Background()

	require.NoError(t, s.SubmitRating(ctx, "c1", "1", 3))
	got, err := s.Ratings(ctx, "c2")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
