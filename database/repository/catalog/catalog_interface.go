package catalogRepo

import (
	"context"
	"errors"

	"findmylocal/models"
)

// ErrNotFound is returned by GetByID when no service carries the id.
var ErrNotFound = errors.New("service not found")

// Repository defines catalog data access. Mutations on an unknown id are
// no-ops reported as (false, nil).
type Repository interface {
	// List returns every service in catalog order.
	List(ctx context.Context) ([]models.Service, error)
	// GetByID returns one service or ErrNotFound.
	GetByID(ctx context.Context, id string) (*models.Service, error)
	// UpdateStatus sets the moderation status of a service.
	UpdateStatus(ctx context.Context, id string, status models.ServiceStatus) (bool, error)
	// SetVerified marks the provider of a service as verified.
	SetVerified(ctx context.Context, id string) (bool, error)
	// Delete removes a service.
	Delete(ctx context.Context, id string) (bool, error)
	// Version increases on every applied mutation.
	Version() uint64
}
