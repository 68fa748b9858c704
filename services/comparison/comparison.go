package comparison

import (
	"context"
	"sync"
	"time"

	"findmylocal/models"
)

// MaxItems bounds a comparison set.
const MaxItems = 3

// Set is an ordered collection of at most MaxItems services, unique by id.
type Set struct {
	items []models.Service
}

// Add appends s unless the set is full or already holds its id.
func (c *Set) Add(s models.Service) bool {
	if len(c.items) >= MaxItems || c.Contains(s.ID) {
		return false
	}
	c.items = append(c.items, s.Clone())
	return true
}

// Remove drops the service with id, if present.
func (c *Set) Remove(id string) bool {
	for i := range c.items {
		if c.items[i].ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

func (c *Set) Contains(id string) bool {
	for i := range c.items {
		if c.items[i].ID == id {
			return true
		}
	}
	return false
}

func (c *Set) Clear() {
	c.items = nil
}

// Items returns a copy in insertion order.
func (c *Set) Items() []models.Service {
	out := make([]models.Service, len(c.items))
	for i, s := range c.items {
		out[i] = s.Clone()
	}
	return out
}

func (c *Set) Len() int {
	return len(c.items)
}

func (c *Set) IsFull() bool {
	return len(c.items) >= MaxItems
}

const (
	DefaultIdleTTL    = 24 * time.Hour
	DefaultMaxClients = 10000
)

type entry struct {
	set      *Set
	lastUsed time.Time
}

// Manager holds one comparison set per client. Sets live in memory only and
// are evicted after IdleTTL without use, or least recently used first once
// more than MaxClients are held.
type Manager struct {
	IdleTTL    time.Duration
	MaxClients int
	Now        func() time.Time

	mu   sync.Mutex
	sets map[string]*entry
}

func NewManager() *Manager {
	return &Manager{
		IdleTTL:    DefaultIdleTTL,
		MaxClients: DefaultMaxClients,
		Now:        time.Now,
		sets:       make(map[string]*entry),
	}
}

// lookup returns the client's set and marks it used. Callers hold mu.
func (m *Manager) lookup(clientID string, create bool) *Set {
	e, ok := m.sets[clientID]
	if !ok {
		if !create {
			return nil
		}
		e = &entry{set: &Set{}}
		m.sets[clientID] = e
		m.evictOverflow(clientID)
	}
	e.lastUsed = m.Now()
	return e.set
}

// evictOverflow drops the least recently used sets other than keep until the
// manager is back within MaxClients.
func (m *Manager) evictOverflow(keep string) {
	if m.MaxClients <= 0 {
		return
	}
	for len(m.sets) > m.MaxClients {
		oldest := ""
		var oldestAt time.Time
		for id, e := range m.sets {
			if id == keep {
				continue
			}
			if oldest == "" || e.lastUsed.Before(oldestAt) {
				oldest, oldestAt = id, e.lastUsed
			}
		}
		if oldest == "" {
			return
		}
		delete(m.sets, oldest)
	}
}

func (m *Manager) Add(clientID string, s models.Service) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lookup(clientID, true).Add(s)
}

func (m *Manager) Remove(clientID, id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	set := m.lookup(clientID, false)
	if set == nil {
		return false
	}
	removed := set.Remove(id)
	if set.Len() == 0 {
		delete(m.sets, clientID)
	}
	return removed
}

func (m *Manager) Clear(clientID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sets, clientID)
}

func (m *Manager) Items(clientID string) []models.Service {
	m.mu.Lock()
	defer m.mu.Unlock()
	set := m.lookup(clientID, false)
	if set == nil {
		return []models.Service{}
	}
	return set.Items()
}

// Replace swaps the client's stored copy of svc for the given one.
func (m *Manager) Replace(clientID string, svc models.Service) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.sets[clientID]
	if !ok {
		return
	}
	for i := range e.set.items {
		if e.set.items[i].ID == svc.ID {
			e.set.items[i] = svc.Clone()
		}
	}
}

// RemoveEverywhere drops id from every client's set, used after a service is deleted.
func (m *Manager) RemoveEverywhere(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for clientID, e := range m.sets {
		e.set.Remove(id)
		if e.set.Len() == 0 {
			delete(m.sets, clientID)
		}
	}
}

// Len reports how many clients currently hold a set.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sets)
}

// Sweep evicts sets idle for longer than IdleTTL and returns how many went.
func (m *Manager) Sweep() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.IdleTTL <= 0 {
		return 0
	}
	cutoff := m.Now().Add(-m.IdleTTL)
	evicted := 0
	for clientID, e := range m.sets {
		if e.lastUsed.Before(cutoff) {
			delete(m.sets, clientID)
			evicted++
		}
	}
	return evicted
}

// Run sweeps every interval until ctx is done.
func (m *Manager) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Sweep()
		}
	}
}
