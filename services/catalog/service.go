package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	catalogRepo "findmylocal/database/repository/catalog"
	"findmylocal/models"
	"findmylocal/services/events"
	"findmylocal/utils"

	"go.uber.org/zap"
)

var (
	ErrServiceNotFound = errors.New("service not found")
	ErrInvalidStatus   = errors.New("invalid service status")
)

type CatalogService interface {
	// ListServices is the public listing; the status dimension is ignored.
	ListServices(ctx context.Context, filters models.Filters) ([]models.Service, error)
	// AdminListServices honours every dimension, status included.
	AdminListServices(ctx context.Context, filters models.Filters) ([]models.Service, error)
	GetService(ctx context.Context, id string) (*models.Service, error)
	Facets() models.Facets

	UpdateServiceStatus(ctx context.Context, id, status string) (bool, error)
	VerifyService(ctx context.Context, id string) (bool, error)
	DeleteService(ctx context.Context, id string) (bool, error)
}

// DefaultCatalogService is the production implementation.
type DefaultCatalogService struct {
	Repo    catalogRepo.Repository
	View    *View
	Events  events.Publisher
	Metrics *utils.MetricsManager
	Logger  *zap.Logger
	Now     func() time.Time
}

func NewCatalogService(repo catalogRepo.Repository, publisher events.Publisher, metrics *utils.MetricsManager, logger *zap.Logger) *DefaultCatalogService {
	return &DefaultCatalogService{
		Repo:    repo,
		View:    NewView(defaultMemoSize),
		Events:  publisher,
		Metrics: metrics,
		Logger:  logger,
		Now:     time.Now,
	}
}

func (s *DefaultCatalogService) ListServices(ctx context.Context, filters models.Filters) ([]models.Service, error) {
	return s.filtered(ctx, filters.WithoutStatus())
}

func (s *DefaultCatalogService) AdminListServices(ctx context.Context, filters models.Filters) ([]models.Service, error) {
	return s.filtered(ctx, filters)
}

func (s *DefaultCatalogService) filtered(ctx context.Context, filters models.Filters) ([]models.Service, error) {
	version := s.Repo.Version()
	if cached, ok := s.View.Lookup(version, filters); ok {
		s.Metrics.FilterMemoHitsTotal.Inc()
		return cached, nil
	}
	s.Metrics.FilterMemoMissesTotal.Inc()

	all, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	result := Evaluate(all, filters)
	s.View.Store(version, filters, result)
	return result, nil
}

func (s *DefaultCatalogService) GetService(ctx context.Context, id string) (*models.Service, error) {
	svc, err := s.Repo.GetByID(ctx, id)
	if errors.Is(err, catalogRepo.ErrNotFound) {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get service %s: %w", id, err)
	}
	return svc, nil
}

func (s *DefaultCatalogService) Facets() models.Facets {
	return models.DefaultFacets()
}

// UpdateServiceStatus is idempotent; an unknown id is a no-op.
func (s *DefaultCatalogService) UpdateServiceStatus(ctx context.Context, id, status string) (bool, error) {
	parsed, err := models.ParseServiceStatus(status)
	if err != nil {
		return false, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	ok, err := s.Repo.UpdateStatus(ctx, id, parsed)
	if err != nil || !ok {
		return false, err
	}

	s.Logger.Info("Service status updated", zap.String("serviceId", id), zap.String("status", string(parsed)))
	s.Metrics.StatusChangesTotal.WithLabelValues(string(parsed)).Inc()
	s.publish(ctx, events.SubjectServiceStatusChanged, events.ServiceEvent{ServiceID: id, Status: string(parsed), At: s.Now()})
	return true, nil
}

func (s *DefaultCatalogService) VerifyService(ctx context.Context, id string) (bool, error) {
	ok, err := s.Repo.SetVerified(ctx, id)
	if err != nil || !ok {
		return false, err
	}
	s.Logger.Info("Service provider verified", zap.String("serviceId", id))
	s.publish(ctx, events.SubjectServiceVerified, events.ServiceEvent{ServiceID: id, At: s.Now()})
	return true, nil
}

func (s *DefaultCatalogService) DeleteService(ctx context.Context, id string) (bool, error) {
	ok, err := s.Repo.Delete(ctx, id)
	if err != nil || !ok {
		return false, err
	}
	s.Logger.Info("Service deleted", zap.String("serviceId", id))
	s.Metrics.ServicesDeletedTotal.Inc()
	s.publish(ctx, events.SubjectServiceDeleted, events.ServiceEvent{ServiceID: id, At: s.Now()})
	return true, nil
}

func (s *DefaultCatalogService) publish(ctx context.Context, subject string, payload interface{}) {
	if err := s.Events.Publish(ctx, subject, payload); err != nil {
		s.Logger.Warn("Failed to publish event", zap.String("subject", subject), zap.Error(err))
	}
}
