// Package memory provides an in-process CredentialStore. Values live only as
// long as the process does.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/ericfisherdev/tokenview/internal/domain/model"
	"github.com/ericfisherdev/tokenview/internal/domain/port/driven"
)

var _ driven.CredentialStore = (*CredentialStore)(nil)

type slotKey struct {
	slot string
	key  string
}

// CredentialStore is a mutex-guarded map implementation of driven.CredentialStore.
type CredentialStore struct {
	mu     sync.RWMutex
	values map[slotKey]model.Credential
}

// NewCredentialStore creates an empty CredentialStore.
func NewCredentialStore() *CredentialStore {
	return &CredentialStore{values: make(map[slotKey]model.Credential)}
}

// Set stores or replaces the value under key in the given slot.
func (s *CredentialStore) Set(_ context.Context, slot, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[slotKey{slot: slot, key: key}] = model.Credential{
		Slot:     slot,
		Key:      key,
		Value:    value,
		StoredAt: time.Now().UTC(),
	}
	return nil
}

// Get returns ("", nil) when nothing is stored under key in the slot.
func (s *CredentialStore) Get(_ context.Context, slot, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values[slotKey{slot: slot, key: key}].Value, nil
}

// Ping always succeeds.
func (s *CredentialStore) Ping(context.Context) error {
	return nil
}

// Len returns the number of stored entries across all slots.
func (s *CredentialStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.values)
}
