package application_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ericfisherdev/tokenview/internal/adapter/driven/memory"
	"github.com/ericfisherdev/tokenview/internal/application"
)

func TestHealthService_Healthy(t *testing.T) {
	svc := application.NewHealthService(memory.NewCredentialStore(), "memory")

	report := svc.Check(context.Background())

	assert.True(t, report.Healthy)
	assert.Equal(t, "memory", report.Store)
	assert.Empty(t, report.Error)
}

func TestHealthService_StoreDown(t *testing.T) {
	svc := application.NewHealthService(&failingStore{err: errors.New("database is locked")}, "sqlite")

	report := svc.Check(context.Background())

	assert.False(t, report.Healthy)
	assert.Equal(t, "sqlite", report.Store)
	assert.Equal(t, "database is locked", report.Error)
}
