package storageRepo

import (
	"context"
	"encoding/json"
)

// GetJSON decodes the value at key into dst. It reports false when the key is
// absent or holds a value that does not decode, leaving dst untouched.
func GetJSON[T any](ctx context.Context, s Store, clientID, key string, dst *T) (bool, error) {
	raw, err := s.Get(ctx, clientID, key)
	if err != nil || raw == nil {
		return false, err
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return false, nil
	}
	*dst = v
	return true, nil
}

// SetJSON stores v encoded as JSON.
func SetJSON[T any](ctx context.Context, s Store, clientID, key string, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Set(ctx, clientID, key, raw)
}

// UpdateJSON decodes the current value (the zero T when absent or unreadable),
// lets fn modify it, and writes it back when fn reports a change.
func UpdateJSON[T any](ctx context.Context, s Store, clientID, key string, fn func(*T) (bool, error)) error {
	return s.Update(ctx, clientID, key, func(current []byte) ([]byte, bool, error) {
		var v T
		if current != nil {
			if err := json.Unmarshal(current, &v); err != nil {
				var zero T
				v = zero
			}
		}
		changed, err := fn(&v)
		if err != nil || !changed {
			return nil, false, err
		}
		next, err := json.Marshal(v)
		if err != nil {
			return nil, false, err
		}
		return next, true, nil
	})
}
