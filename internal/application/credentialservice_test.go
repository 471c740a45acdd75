package application_test

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/tokenview/internal/adapter/driven/memory"
	"github.com/ericfisherdev/tokenview/internal/application"
	"github.com/ericfisherdev/tokenview/internal/domain/model"
	"github.com/ericfisherdev/tokenview/internal/metrics"
)

// failingStore is a CredentialStore whose every call fails.
type failingStore struct{ err error }

func (f *failingStore) Set(context.Context, string, string, string) error { return f.err }
func (f *failingStore) Get(context.Context, string, string) (string, error) {
	return "", f.err
}
func (f *failingStore) Ping(context.Context) error { return f.err }

func TestCredentialService_SaveThenLoad(t *testing.T) {
	store := memory.NewCredentialStore()
	svc := application.NewCredentialService(store)
	ctx := context.Background()

	before := testutil.ToFloat64(metrics.CredentialsStored)
	require.NoError(t, svc.Save(ctx, "slot-a", "header.payload.sig"))
	assert.InDelta(t, before+1, testutil.ToFloat64(metrics.CredentialsStored), 0.0001)

	value, ok, err := svc.Load(ctx, "slot-a")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "header.payload.sig", value)

	raw, err := store.Get(ctx, "slot-a", model.GoogleTokenKey)
	require.NoError(t, err)
	assert.Equal(t, "header.payload.sig", raw, "value must land under the fixed key")
}

func TestCredentialService_SaveKeepsValueVerbatim(t *testing.T) {
	svc := application.NewCredentialService(memory.NewCredentialStore())
	ctx := context.Background()

	require.NoError(t, svc.Save(ctx, "slot-a", " padded \n"))

	value, ok, err := svc.Load(ctx, "slot-a")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, " padded \n", value)
}

func TestCredentialService_SaveRejectsEmpty(t *testing.T) {
	store := memory.NewCredentialStore()
	svc := application.NewCredentialService(store)
	ctx := context.Background()

	assert.ErrorIs(t, svc.Save(ctx, "slot-a", ""), application.ErrEmptyCredential)
	assert.ErrorIs(t, svc.Save(ctx, "", "token"), application.ErrNoSlot)
	assert.Equal(t, 0, store.Len(), "rejected saves must not write")
}

func TestCredentialService_SaveWhitespaceOnly(t *testing.T) {
	svc := application.NewCredentialService(memory.NewCredentialStore())
	ctx := context.Background()

	require.NoError(t, svc.Save(ctx, "slot-a", "   "))

	value, ok, err := svc.Load(ctx, "slot-a")
	require.NoError(t, err)
	assert.True(t, ok, "any non-empty credential counts as present")
	assert.Equal(t, "   ", value)
}

func TestCredentialService_LoadMissing(t *testing.T) {
	svc := application.NewCredentialService(memory.NewCredentialStore())

	value, ok, err := svc.Load(context.Background(), "slot-a")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, value)

	value, ok, err = svc.Load(context.Background(), "")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, value)
}

func TestCredentialService_StoreErrorsAreWrapped(t *testing.T) {
	storeErr := errors.New("disk full")
	svc := application.NewCredentialService(&failingStore{err: storeErr})
	ctx := context.Background()

	err := svc.Save(ctx, "slot-a", "token")
	require.ErrorIs(t, err, storeErr)
	assert.Contains(t, err.Error(), "save credential")

	_, ok, err := svc.Load(ctx, "slot-a")
	require.ErrorIs(t, err, storeErr)
	assert.False(t, ok)
}
