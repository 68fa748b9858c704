package catalog

import (
	"sync"

	"findmylocal/models"
)

const defaultMemoSize = 128

// View memoizes filtered results for one catalog version. Any version change
// drops every memoized entry.
type View struct {
	mu      sync.Mutex
	version uint64
	limit   int
	entries map[string][]models.Service
}

func NewView(limit int) *View {
	if limit <= 0 {
		limit = defaultMemoSize
	}
	return &View{limit: limit, entries: make(map[string][]models.Service)}
}

// Lookup returns a copy of the memoized result for (version, f).
func (v *View) Lookup(version uint64, f models.Filters) ([]models.Service, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if version != v.version {
		return nil, false
	}
	cached, ok := v.entries[f.Key()]
	if !ok {
		return nil, false
	}
	return cloneAll(cached), true
}

// Store memoizes result under (version, f). A result computed for an older
// version than the one already held is discarded.
func (v *View) Store(version uint64, f models.Filters, result []models.Service) {
	v.mu.Lock()
	defer v.mu.Unlock()
	switch {
	case version < v.version:
		return
	case version > v.version:
		v.version = version
		v.entries = make(map[string][]models.Service)
	}
	if len(v.entries) >= v.limit {
		v.entries = make(map[string][]models.Service)
	}
	v.entries[f.Key()] = cloneAll(result)
}

// Len is the number of memoized entries.
func (v *View) Len() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.entries)
}

func cloneAll(in []models.Service) []models.Service {
	out := make([]models.Service, len(in))
	for i, s := range in {
		out[i] = s.Clone()
	}
	return out
}
