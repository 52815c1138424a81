package store

import (
	"encoding/json"
	"fmt"

	"github.com/mesh-intelligence/pantry/pkg/types"
)

// collection holds the load/seed/persist plumbing shared by every
// entity repository. Methods assume the caller holds store.mu; the
// repositories own the locking.
type collection[T any] struct {
	store   *Store
	name    string          // collection name, e.g. "articles"
	prepend bool            // insert new records at the front
	idOf    func(T) string  // extracts the record id
	seed    func() []T      // default records for first read
}

func newCollection[T any](s *Store, name string, prepend bool, idOf func(T) string, seed func() []T) *collection[T] {
	return &collection[T]{store: s, name: name, prepend: prepend, idOf: idOf, seed: seed}
}

// load returns the full collection, materializing the seed set exactly
// once: only when the backing key is absent. A present value that fails
// to parse is surfaced as ErrMalformedRecord rather than silently
// reseeded, since reseeding would destroy whatever the value still holds.
func (c *collection[T]) load() ([]T, error) {
	if c.store.closed {
		return nil, types.ErrStoreClosed
	}

	key := c.store.key(c.name)
	raw, ok, err := c.store.kv.Get(key)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", c.name, err)
	}
	if !ok {
		seeded := c.seed()
		if err := c.persist(seeded); err != nil {
			return nil, fmt.Errorf("seeding %s: %w", c.name, err)
		}
		return seeded, nil
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("parsing %s: %w: %v", c.name, types.ErrMalformedRecord, err)
	}
	return items, nil
}

// persist serializes and writes the entire collection in one backend
// write. Backend errors propagate to the caller unmodified.
func (c *collection[T]) persist(items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", c.name, err)
	}
	if err := c.store.kv.Set(c.store.key(c.name), string(data)); err != nil {
		return fmt.Errorf("persisting %s: %w", c.name, err)
	}
	return nil
}

// get returns the record with the given id, or ErrNotFound.
func (c *collection[T]) get(id string) (T, error) {
	var zero T
	if id == "" {
		return zero, types.ErrInvalidID
	}
	items, err := c.load()
	if err != nil {
		return zero, err
	}
	for _, item := range items {
		if c.idOf(item) == id {
			return item, nil
		}
	}
	return zero, types.ErrNotFound
}

// find returns the first record in stored order for which match is true.
// A later duplicate is silently shadowed by the earlier insertion.
func (c *collection[T]) find(match func(T) bool) (T, error) {
	var zero T
	items, err := c.load()
	if err != nil {
		return zero, err
	}
	for _, item := range items {
		if match(item) {
			return item, nil
		}
	}
	return zero, types.ErrNotFound
}

// insert adds item at the collection's insert position and persists.
func (c *collection[T]) insert(item T) error {
	items, err := c.load()
	if err != nil {
		return err
	}
	if c.prepend {
		items = append([]T{item}, items...)
	} else {
		items = append(items, item)
	}
	return c.persist(items)
}

// update applies fn to the record with the given id, persists, and
// returns the updated record. A missing id returns ErrNotFound without
// writing anything.
func (c *collection[T]) update(id string, fn func(*T)) (T, error) {
	var zero T
	items, err := c.load()
	if err != nil {
		return zero, err
	}
	for i := range items {
		if c.idOf(items[i]) == id {
			fn(&items[i])
			if err := c.persist(items); err != nil {
				return zero, err
			}
			return items[i], nil
		}
	}
	return zero, types.ErrNotFound
}

// removeAll drops every record whose id is in ids and persists the
// remainder in a single write. keep, when non-nil, marks ids that must
// survive regardless.
func (c *collection[T]) removeAll(ids []string, keep func(string) bool) error {
	items, err := c.load()
	if err != nil {
		return err
	}

	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}

	remaining := make([]T, 0, len(items))
	for _, item := range items {
		id := c.idOf(item)
		if drop[id] && (keep == nil || !keep(id)) {
			continue
		}
		remaining = append(remaining, item)
	}
	return c.persist(remaining)
}
