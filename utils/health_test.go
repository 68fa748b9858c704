package utils

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckHealth(t *testing.T) {
	mr := miniredis.RunT(t)
	up := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { up.Close() })

	down := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
	t.Cleanup(func() { down.Close() })

	status := CheckHealth(context.Background(), []*redis.Client{up, down}, nil)
	assert.Equal(t, []bool{true, false}, status.Redis)
	assert.Nil(t, status.Mongo)
	require.False(t, status.CheckedAt.IsZero())
	assert.Equal(t, status, GetHealthStatus())
}
