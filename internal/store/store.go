// Package store implements the Pantry content store: per-entity
// repositories over a single key-value backend, first-read seeding, the
// settings singleton, and backup/restore.
//
// Every mutating operation reads the whole collection, changes it in
// memory, and writes the whole collection back. A store-level mutex
// serializes operations within one process; there is no cross-process
// coordination, so two processes sharing a data directory race at
// whole-collection granularity and the last write wins.
package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/pantry/pkg/types"
)

// Store implements types.Store over a types.KV backend.
type Store struct {
	mu     sync.Mutex
	kv     types.KV
	prefix string
	now    func() time.Time
	closed bool

	articles   *articles
	pages      *pages
	categories *categories
	events     *events
	media      *media
	users      *users
	roles      *roles
	settings   *settings
}

// New creates a Store over kv using cfg's key prefix and the wall clock.
func New(kv types.KV, cfg types.Config) *Store {
	return NewWithClock(kv, cfg, time.Now)
}

// NewWithClock is New with an injected clock; tests use it to pin
// timestamps.
func NewWithClock(kv types.KV, cfg types.Config, now func() time.Time) *Store {
	s := &Store{
		kv:     kv,
		prefix: cfg.Prefix(),
		now:    now,
	}

	s.articles = newArticles(s)
	s.pages = newPages(s)
	s.categories = newCategories(s)
	s.events = newEvents(s)
	s.media = newMedia(s)
	s.users = newUsers(s)
	s.roles = newRoles(s)
	s.settings = newSettings(s)

	return s
}

func (s *Store) Articles() types.ArticleRepository     { return s.articles }
func (s *Store) Pages() types.PageRepository           { return s.pages }
func (s *Store) Categories() types.CategoryRepository  { return s.categories }
func (s *Store) Events() types.EventRepository         { return s.events }
func (s *Store) Media() types.MediaRepository          { return s.media }
func (s *Store) Users() types.UserRepository           { return s.users }
func (s *Store) Roles() types.RoleRepository           { return s.roles }
func (s *Store) Settings() types.SettingsRepository    { return s.settings }

// Reset clears the backend entirely; the next reads reseed.
func (s *Store) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return types.ErrStoreClosed
	}
	return s.kv.Clear()
}

// Close releases the backend. Idempotent.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.kv.Close()
}

// key returns the backing storage key for a collection.
func (s *Store) key(collection string) string {
	return types.StorageKey(s.prefix, collection)
}

// timestamp formats the current clock reading as the stored timestamp
// string. Sub-second precision keeps "UpdatedAt changed" observable for
// back-to-back mutations.
func (s *Store) timestamp() string {
	return s.now().UTC().Format(time.RFC3339Nano)
}

// newID generates a UUID v7 string, falling back to v4 if v7 generation
// fails. Ids are opaque and never derived from content.
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
