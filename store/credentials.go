package store

import (
	"sync"

	"elysium/models"
)

// CredentialStore holds the admin console credentials.
type CredentialStore interface {
	Verify(username, passcode string) bool
	Update(creds models.AdminCredentials)
}

// MemoryCredentialStore is the in-process CredentialStore.
type MemoryCredentialStore struct {
	mu    sync.RWMutex
	creds models.AdminCredentials
}

func NewMemoryCredentialStore(seed models.AdminCredentials) *MemoryCredentialStore {
	return &MemoryCredentialStore{creds: seed}
}

// Verify compares by exact string equality.
func (s *MemoryCredentialStore) Verify(username, passcode string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return username == s.creds.Username && passcode == s.creds.Passcode
}

func (s *MemoryCredentialStore) Update(creds models.AdminCredentials) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creds = creds
}
