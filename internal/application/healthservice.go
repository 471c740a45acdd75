package application

import (
	"context"
	"time"

	"github.com/ericfisherdev/tokenview/internal/domain/port/driven"
)

// storePingTimeout bounds how long a health probe waits on the store.
const storePingTimeout = 2 * time.Second

// HealthReport is the outcome of a health probe.
type HealthReport struct {
	Healthy bool
	Store   string
	Error   string
}

// HealthService checks the dependencies the screens need to serve requests.
type HealthService struct {
	store     driven.CredentialStore
	storeName string
}

// NewHealthService creates a HealthService probing store. storeName is
// reported back as-is (e.g. "sqlite", "memory").
func NewHealthService(store driven.CredentialStore, storeName string) *HealthService {
	return &HealthService{store: store, storeName: storeName}
}

// Check pings the credential store.
func (s *HealthService) Check(ctx context.Context) HealthReport {
	ctx, cancel := context.WithTimeout(ctx, storePingTimeout)
	defer cancel()

	report := HealthReport{Healthy: true, Store: s.storeName}
	if err := s.store.Ping(ctx); err != nil {
		report.Healthy = false
		report.Error = err.Error()
	}
	return report
}
