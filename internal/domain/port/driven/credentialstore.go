package driven

import (
	"context"
)

// CredentialStore defines the driven port for per-browser key-value
// persistence. It plays the role of the browser's persistent storage: each
// slot is an isolated namespace of string keys.
type CredentialStore interface {
	// Set stores or replaces the value under key in the given slot.
	Set(ctx context.Context, slot, key, value string) error

	// Get retrieves the value under key in the given slot.
	// Returns ("", nil) if no value exists.
	Get(ctx context.Context, slot, key string) (string, error)

	// Ping reports whether the backing storage is reachable.
	Ping(ctx context.Context) error
}
