package catalogRepo

import (
	"context"
	"sync"

	"findmylocal/models"
)

// MemoryCatalogRepo keeps the catalog in process memory.
type MemoryCatalogRepo struct {
	mu       sync.RWMutex
	services []models.Service
	version  uint64
}

// NewMemoryCatalogRepo creates a repository holding a copy of services.
func NewMemoryCatalogRepo(services []models.Service) *MemoryCatalogRepo {
	own := make([]models.Service, len(services))
	for i, s := range services {
		own[i] = s.Clone()
	}
	return &MemoryCatalogRepo{services: own}
}

func (r *MemoryCatalogRepo) List(ctx context.Context) ([]models.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Service, len(r.services))
	for i, s := range r.services {
		out[i] = s.Clone()
	}
	return out, nil
}

func (r *MemoryCatalogRepo) GetByID(ctx context.Context, id string) (*models.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i := r.indexOf(id); i >= 0 {
		s := r.services[i].Clone()
		return &s, nil
	}
	return nil, ErrNotFound
}

func (r *MemoryCatalogRepo) UpdateStatus(ctx context.Context, id string, status models.ServiceStatus) (bool, error) {
	return r.mutate(id, func(s *models.Service) {
		s.Status = status
	})
}

func (r *MemoryCatalogRepo) SetVerified(ctx context.Context, id string) (bool, error) {
	return r.mutate(id, func(s *models.Service) {
		s.Provider.Verified = true
	})
}

func (r *MemoryCatalogRepo) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return false, nil
	}
	r.services = append(r.services[:i], r.services[i+1:]...)
	r.version++
	return true, nil
}

func (r *MemoryCatalogRepo) Version() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.version
}

func (r *MemoryCatalogRepo) mutate(id string, fn func(*models.Service)) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return false, nil
	}
	fn(&r.services[i])
	r.version++
	return true, nil
}

// indexOf must be called with mu held.
func (r *MemoryCatalogRepo) indexOf(id string) int {
	for i := range r.services {
		if r.services[i].ID == id {
			return i
		}
	}
	return -1
}
