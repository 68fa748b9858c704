package storageRepo

import (
	"context"
	"errors"
)

// ErrPersistenceUnavailable wraps every failure to read or write the backing store.
var ErrPersistenceUnavailable = errors.New("persistence unavailable")

// Client keys.
const (
	KeyBookings            = "bookings"
	KeyServiceRatings      = "serviceRatings"
	KeyFavorites           = "favorites"
	KeyUser                = "user"
	KeyTheme               = "theme"
	KeyOnboardingCompleted = "onboardingCompleted"
)

// Provider dashboard keys, stored under ProviderScope(email).
const (
	KeyProviderBookings     = "providerBookings"
	KeyProviderSlots        = "providerSlots"
	KeyProviderBlockedDates = "providerBlockedDates"
)

// ProviderScope is the store client id holding a provider's dashboard. The
// leading underscore keeps it out of reach of client ids.
func ProviderScope(email string) string {
	return "_provider:" + email
}

// UpdateFunc receives the current value (nil when absent) and returns the value
// to store. Returning changed=false leaves the key untouched; a nil next value
// deletes it.
type UpdateFunc func(current []byte) (next []byte, changed bool, err error)

// Store is a per-client key/value store with string keys and opaque values.
type Store interface {
	// Get returns nil, nil when the key is absent.
	Get(ctx context.Context, clientID, key string) ([]byte, error)
	Set(ctx context.Context, clientID, key string, value []byte) error
	Delete(ctx context.Context, clientID, key string) error
	// Update applies fn as an atomic read-modify-write of one key.
	Update(ctx context.Context, clientID, key string, fn UpdateFunc) error
}

// ChangeListener is told about every key a Store wrote or deleted.
type ChangeListener interface {
	KeyChanged(clientID, key string)
}
