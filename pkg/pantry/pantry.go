// Package pantry provides the public API for the Pantry content store.
// It exposes the factory for opening a store while keeping the
// repositories and backends internal.
package pantry

import (
	"fmt"

	"github.com/mesh-intelligence/pantry/internal/kvstore"
	"github.com/mesh-intelligence/pantry/internal/store"
	"github.com/mesh-intelligence/pantry/pkg/types"
)

// Version is the pantry release version.
const Version = "v0.1.0"

// Open validates config, opens the selected backend, and returns a
// ready Store. The caller must Close it.
//
// Example:
//
//	s, err := pantry.Open(types.Config{
//	    Backend: types.BackendSQLite,
//	    DataDir: ".pantry-db",
//	})
//	defer s.Close()
func Open(cfg types.Config) (types.Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	kv, err := kvstore.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("open backend: %w", err)
	}
	return store.New(kv, cfg), nil
}
