package store

import (
	"errors"
	"sync"

	"elysium/models"
)

// CatalogStore holds the bookable service offerings. The admin console is
// the sole mutator; booking and concierge paths read snapshots.
type CatalogStore interface {
	List() []models.Service
	Get(id string) (models.Service, bool)
	Add(svc models.Service) error
	Update(svc models.Service) error
	Remove(id string) error
}

// MemoryCatalogStore is the in-process CatalogStore. State lives only for
// the lifetime of the process.
type MemoryCatalogStore struct {
	mu       sync.RWMutex
	services []models.Service
}

// NewMemoryCatalogStore returns a catalog pre-populated with the given
// services.
func NewMemoryCatalogStore(seed []models.Service) *MemoryCatalogStore {
	s := &MemoryCatalogStore{}
	s.services = append(s.services, seed...)
	return s
}

func (s *MemoryCatalogStore) List() []models.Service {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Service, len(s.services))
	copy(out, s.services)
	return out
}

func (s *MemoryCatalogStore) Get(id string) (models.Service, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, svc := range s.services {
		if svc.ID == id {
			return svc, true
		}
	}
	return models.Service{}, false
}

func (s *MemoryCatalogStore) Add(svc models.Service) error {
	if svc.ID == "" {
		return errors.New("service id is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.services {
		if existing.ID == svc.ID {
			return ErrDuplicateID
		}
	}
	s.services = append(s.services, svc)
	return nil
}

func (s *MemoryCatalogStore) Update(svc models.Service) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.services {
		if existing.ID == svc.ID {
			s.services[i] = svc
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemoryCatalogStore) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.services {
		if existing.ID == id {
			s.services = append(s.services[:i], s.services[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
