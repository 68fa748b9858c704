package storageRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	keyPrefix    = "findmylocal:client:"
	maxTxRetries = 100
	opTimeout    = 3 * time.Second
)

// RedisStore persists client data in Redis, one string value per client key.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func redisKey(clientID, key string) string {
	return keyPrefix + clientID + ":" + key
}

func unavailable(op, key string, err error) error {
	return fmt.Errorf("%w: %s %s: %w", ErrPersistenceUnavailable, op, key, err)
}

func (s *RedisStore) Get(ctx context.Context, clientID, key string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	val, err := s.client.Get(ctx, redisKey(clientID, key)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, unavailable("get", key, err)
	}
	return val, nil
}

func (s *RedisStore) Set(ctx context.Context, clientID, key string, value []byte) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if err := s.client.Set(ctx, redisKey(clientID, key), value, 0).Err(); err != nil {
		return unavailable("set", key, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, clientID, key string) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if err := s.client.Del(ctx, redisKey(clientID, key)).Err(); err != nil {
		return unavailable("delete", key, err)
	}
	return nil
}

// Update runs fn inside a WATCH/MULTI transaction and retries when another
// writer touched the key in between.
func (s *RedisStore) Update(ctx context.Context, clientID, key string, fn UpdateFunc) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	rk := redisKey(clientID, key)
	for attempt := 0; attempt < maxTxRetries; attempt++ {
		var fnErr error
		err := s.client.Watch(ctx, func(tx *redis.Tx) error {
			current, err := tx.Get(ctx, rk).Bytes()
			if err == redis.Nil {
				current = nil
			} else if err != nil {
				return err
			}

			next, changed, err := fn(current)
			if err != nil {
				fnErr = err
				return err
			}
			if !changed {
				return nil
			}
			_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				if next == nil {
					pipe.Del(ctx, rk)
				} else {
					pipe.Set(ctx, rk, next, 0)
				}
				return nil
			})
			return err
		}, rk)

		switch {
		case fnErr != nil:
			return fnErr
		case err == nil:
			return nil
		case errors.Is(err, redis.TxFailedErr):
			continue
		default:
			return unavailable("update", key, err)
		}
	}
	return unavailable("update", key, errors.New("too many concurrent writers"))
}
