package store

import (
	"sync"

	"elysium/models"
)

// ContentStore holds the editable site content.
type ContentStore interface {
	Get() models.CMSContent
	Update(content models.CMSContent)
}

// MemoryContentStore is the in-process ContentStore.
type MemoryContentStore struct {
	mu      sync.RWMutex
	content models.CMSContent
}

func NewMemoryContentStore(seed models.CMSContent) *MemoryContentStore {
	return &MemoryContentStore{content: seed}
}

func (s *MemoryContentStore) Get() models.CMSContent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.content
}

func (s *MemoryContentStore) Update(content models.CMSContent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.content = content
}
