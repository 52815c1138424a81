package store

import "github.com/mesh-intelligence/pantry/pkg/types"

// categories implements types.CategoryRepository. New categories are
// prepended. Deleting a category leaves article references dangling;
// readers resolve them lazily and tolerate the miss.
type categories struct {
	c *collection[types.Category]
}

func newCategories(s *Store) *categories {
	return &categories{c: newCollection(
		s, types.CollectionCategories, true,
		func(c types.Category) string { return c.ID },
		func() []types.Category { return s.seedCategories() },
	)}
}

func (r *categories) All() ([]types.Category, error) {
	r.c.store.mu.Lock()
	defer r.c.store.mu.Unlock()
	return r.c.load()
}

func (r *categories) Get(id string) (types.Category, error) {
	r.c.store.mu.Lock()
	defer r.c.store.mu.Unlock()
	return r.c.get(id)
}

func (r *categories) Create(cat types.Category) (types.Category, error) {
	r.c.store.mu.Lock()
	defer r.c.store.mu.Unlock()

	cat.ID = newID()
	cat.CreatedAt = r.c.store.timestamp()
	if err := r.c.insert(cat); err != nil {
		return types.Category{}, err
	}
	return cat, nil
}

func (r *categories) Update(id string, patch types.CategoryPatch) (types.Category, error) {
	r.c.store.mu.Lock()
	defer r.c.store.mu.Unlock()

	return r.c.update(id, func(c *types.Category) {
		if patch.Name != nil {
			c.Name = *patch.Name
		}
		if patch.Slug != nil {
			c.Slug = *patch.Slug
		}
		if patch.Color != nil {
			c.Color = *patch.Color
		}
	})
}

func (r *categories) Delete(id string) error {
	r.c.store.mu.Lock()
	defer r.c.store.mu.Unlock()
	return r.c.removeAll([]string{id}, nil)
}

func (r *categories) DeleteMany(ids []string) error {
	r.c.store.mu.Lock()
	defer r.c.store.mu.Unlock()
	return r.c.removeAll(ids, nil)
}
