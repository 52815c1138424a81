package store

import (
	"encoding/json"
	"fmt"

	"github.com/mesh-intelligence/pantry/pkg/types"
)

// Export returns a backup object whose top-level keys are the full
// storage keys, each mapping to that collection's current JSON value.
// Collections never read before are seeded first so a fresh
// installation exports its defaults rather than holes.
func (s *Store) Export() (map[string]json.RawMessage, error) {
	if err := s.ensureSeeded(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, types.ErrStoreClosed
	}

	backup := make(map[string]json.RawMessage, len(types.Collections()))
	for _, name := range types.Collections() {
		key := s.key(name)
		raw, ok, err := s.kv.Get(key)
		if err != nil {
			return nil, fmt.Errorf("exporting %s: %w", name, err)
		}
		if !ok {
			continue
		}
		if !json.Valid([]byte(raw)) {
			return nil, fmt.Errorf("exporting %s: %w", name, types.ErrMalformedRecord)
		}
		backup[key] = json.RawMessage(raw)
	}
	return backup, nil
}

// Import overwrites collections key-by-key from a backup object. The
// payloads are written as-is, without interpretation; keys that do not
// belong to this store's prefix are ignored.
func (s *Store) Import(backup map[string]json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return types.ErrStoreClosed
	}

	known := make(map[string]bool, len(types.Collections()))
	for _, name := range types.Collections() {
		known[s.key(name)] = true
	}

	for key, payload := range backup {
		if !known[key] {
			continue
		}
		if err := s.kv.Set(key, string(payload)); err != nil {
			return fmt.Errorf("importing %s: %w", key, err)
		}
	}
	return nil
}

// ensureSeeded reads every collection and the settings document once,
// materializing any seed set whose backing key is still absent.
func (s *Store) ensureSeeded() error {
	if _, err := s.articles.All(); err != nil {
		return err
	}
	if _, err := s.pages.All(); err != nil {
		return err
	}
	if _, err := s.categories.All(); err != nil {
		return err
	}
	if _, err := s.events.All(); err != nil {
		return err
	}
	if _, err := s.media.All(); err != nil {
		return err
	}
	if _, err := s.users.All(); err != nil {
		return err
	}
	if _, err := s.roles.All(); err != nil {
		return err
	}
	if _, err := s.settings.Get(); err != nil {
		return err
	}
	return nil
}
