package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentialStore_SetAndGet(t *testing.T) {
	store := NewCredentialStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "slot-a", "google_token", "abc"))

	val, err := store.Get(ctx, "slot-a", "google_token")
	require.NoError(t, err)
	assert.Equal(t, "abc", val)
	assert.Equal(t, 1, store.Len())
}

func TestCredentialStore_GetMissing(t *testing.T) {
	store := NewCredentialStore()

	val, err := store.Get(context.Background(), "slot-a", "google_token")
	require.NoError(t, err)
	assert.Equal(t, "", val)
	assert.Equal(t, 0, store.Len())
}

func TestCredentialStore_Overwrite(t *testing.T) {
	store := NewCredentialStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "slot-a", "google_token", "old"))
	require.NoError(t, store.Set(ctx, "slot-a", "google_token", "new"))

	val, err := store.Get(ctx, "slot-a", "google_token")
	require.NoError(t, err)
	assert.Equal(t, "new", val)
	assert.Equal(t, 1, store.Len())
}

func TestCredentialStore_ConcurrentAccess(t *testing.T) {
	store := NewCredentialStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			slot := fmt.Sprintf("slot-%d", i)
			_ = store.Set(ctx, slot, "google_token", slot)
			_, _ = store.Get(ctx, slot, "google_token")
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, store.Len())
	assert.NoError(t, store.Ping(ctx))
}
