package store

import "github.com/mesh-intelligence/pantry/pkg/types"

// events implements types.EventRepository. New events are appended;
// the calendar sorts by date client-side.
type events struct {
	c *collection[types.Event]
}

func newEvents(s *Store) *events {
	return &events{c: newCollection(
		s, types.CollectionEvents, false,
		func(e types.Event) string { return e.ID },
		func() []types.Event { return s.seedEvents() },
	)}
}

func (r *events) All() ([]types.Event, error) {
	r.c.store.mu.Lock()
	defer r.c.store.mu.Unlock()
	return r.c.load()
}

func (r *events) Get(id string) (types.Event, error) {
	r.c.store.mu.Lock()
	defer r.c.store.mu.Unlock()
	return r.c.get(id)
}

func (r *events) Create(e types.Event) (types.Event, error) {
	r.c.store.mu.Lock()
	defer r.c.store.mu.Unlock()

	e.ID = newID()
	e.CreatedAt = r.c.store.timestamp()
	if err := r.c.insert(e); err != nil {
		return types.Event{}, err
	}
	return e, nil
}

func (r *events) Update(id string, patch types.EventPatch) (types.Event, error) {
	r.c.store.mu.Lock()
	defer r.c.store.mu.Unlock()

	return r.c.update(id, func(e *types.Event) {
		if patch.Title != nil {
			e.Title = *patch.Title
		}
		if patch.Description != nil {
			e.Description = *patch.Description
		}
		if patch.StartDate != nil {
			e.StartDate = *patch.StartDate
		}
		if patch.EndDate != nil {
			e.EndDate = *patch.EndDate
		}
		if patch.Location != nil {
			e.Location = *patch.Location
		}
	})
}

func (r *events) Delete(id string) error {
	r.c.store.mu.Lock()
	defer r.c.store.mu.Unlock()
	return r.c.removeAll([]string{id}, nil)
}

func (r *events) DeleteMany(ids []string) error {
	r.c.store.mu.Lock()
	defer r.c.store.mu.Unlock()
	return r.c.removeAll(ids, nil)
}
