package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ericfisherdev/tokenview/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.CredentialStore = (*CredentialRepo)(nil)

// CredentialRepo is the SQLite implementation of the CredentialStore port interface.
// Values are stored as given; nothing is encoded or inspected.
type CredentialRepo struct {
	db *DB
}

// NewCredentialRepo creates a new CredentialRepo.
func NewCredentialRepo(db *DB) *CredentialRepo {
	return &CredentialRepo{db: db}
}

// Set stores or replaces the value under key in the given slot.
func (r *CredentialRepo) Set(ctx context.Context, slot, key, value string) error {
	const query = `
		INSERT INTO browser_storage (slot, key, value, stored_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (slot, key) DO UPDATE SET
			value = excluded.value,
			stored_at = excluded.stored_at`

	if _, err := r.db.Writer.ExecContext(ctx, query, slot, key, value); err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}

// Get retrieves the value under key in the given slot.
// Returns ("", nil) if no value exists.
func (r *CredentialRepo) Get(ctx context.Context, slot, key string) (string, error) {
	const query = `SELECT value FROM browser_storage WHERE slot = ? AND key = ?`

	var value string
	err := r.db.Reader.QueryRowContext(ctx, query, slot, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get %q: %w", key, err)
	}
	return value, nil
}

// Ping reports whether both connections are reachable.
func (r *CredentialRepo) Ping(ctx context.Context) error {
	if err := r.db.Writer.PingContext(ctx); err != nil {
		return fmt.Errorf("ping writer: %w", err)
	}
	if err := r.db.Reader.PingContext(ctx); err != nil {
		return fmt.Errorf("ping reader: %w", err)
	}
	return nil
}
