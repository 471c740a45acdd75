package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/ericfisherdev/tokenview/internal/domain/model"
	"github.com/ericfisherdev/tokenview/internal/domain/port/driven"
	"github.com/ericfisherdev/tokenview/internal/metrics"
)

var (
	// ErrNoSlot is returned when a credential is saved without a browser slot.
	ErrNoSlot = errors.New("no browser slot")

	// ErrEmptyCredential is returned when the sign-in callback carried no credential.
	ErrEmptyCredential = errors.New("credential is empty")
)

// CredentialService persists and reads back the sign-in credential for a
// browser slot. The credential is opaque: it is stored and returned verbatim
// and never decoded, validated or checked for expiry.
type CredentialService struct {
	store driven.CredentialStore
}

// NewCredentialService creates a CredentialService backed by store.
func NewCredentialService(store driven.CredentialStore) *CredentialService {
	return &CredentialService{store: store}
}

// Save writes value under the fixed google_token key of slot, replacing any
// previous value.
func (s *CredentialService) Save(ctx context.Context, slot, value string) error {
	if slot == "" {
		return ErrNoSlot
	}
	if value == "" {
		return ErrEmptyCredential
	}

	if err := s.store.Set(ctx, slot, model.GoogleTokenKey, value); err != nil {
		return fmt.Errorf("save credential: %w", err)
	}
	metrics.CredentialsStored.Inc()
	return nil
}

// Load returns the credential stored for slot. ok is false when the slot is
// empty or nothing has been stored yet.
func (s *CredentialService) Load(ctx context.Context, slot string) (value string, ok bool, err error) {
	if slot == "" {
		return "", false, nil
	}

	value, err = s.store.Get(ctx, slot, model.GoogleTokenKey)
	if err != nil {
		return "", false, fmt.Errorf("load credential: %w", err)
	}
	return value, value != "", nil
}
