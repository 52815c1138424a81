// Package kvstore provides the durable key-value backends behind the
// Pantry store: a SQLite-backed default, a one-document-per-key file
// backend, and an in-memory backend for tests.
package kvstore

import (
	"fmt"

	"github.com/mesh-intelligence/pantry/pkg/types"
)

// Open creates the backend selected by cfg. The config must already be
// validated; an unknown backend here is a programming error surfaced as
// a plain error rather than a panic.
func Open(cfg types.Config) (types.KV, error) {
	switch cfg.Backend {
	case types.BackendSQLite:
		return OpenSQLite(cfg.DataDir)
	case types.BackendFile:
		return OpenFile(cfg.DataDir)
	case types.BackendMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("open backend %q: %w", cfg.Backend, types.ErrBackendUnknown)
	}
}
