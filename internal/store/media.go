package store

import "github.com/mesh-intelligence/pantry/pkg/types"

// media implements types.MediaRepository. New uploads are prepended so
// the library shows newest first. Other records reference media by URL,
// not id, so deletion never cascades.
type media struct {
	c *collection[types.Media]
}

func newMedia(s *Store) *media {
	return &media{c: newCollection(
		s, types.CollectionMedia, true,
		func(m types.Media) string { return m.ID },
		seedMedia,
	)}
}

func (r *media) All() ([]types.Media, error) {
	r.c.store.mu.Lock()
	defer r.c.store.mu.Unlock()
	return r.c.load()
}

func (r *media) Get(id string) (types.Media, error) {
	r.c.store.mu.Lock()
	defer r.c.store.mu.Unlock()
	return r.c.get(id)
}

func (r *media) Create(m types.Media) (types.Media, error) {
	r.c.store.mu.Lock()
	defer r.c.store.mu.Unlock()

	m.ID = newID()
	m.CreatedAt = r.c.store.timestamp()
	if err := r.c.insert(m); err != nil {
		return types.Media{}, err
	}
	return m, nil
}

func (r *media) Update(id string, patch types.MediaPatch) (types.Media, error) {
	r.c.store.mu.Lock()
	defer r.c.store.mu.Unlock()

	return r.c.update(id, func(m *types.Media) {
		if patch.Name != nil {
			m.Name = *patch.Name
		}
	})
}

func (r *media) Delete(id string) error {
	r.c.store.mu.Lock()
	defer r.c.store.mu.Unlock()
	return r.c.removeAll([]string{id}, nil)
}

func (r *media) DeleteMany(ids []string) error {
	r.c.store.mu.Lock()
	defer r.c.store.mu.Unlock()
	return r.c.removeAll(ids, nil)
}
