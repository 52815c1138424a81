package store

import "github.com/mesh-intelligence/pantry/pkg/types"

// pages implements types.PageRepository. New pages are appended, so
// stored order is insertion order oldest first.
type pages struct {
	c *collection[types.Page]
}

func newPages(s *Store) *pages {
	return &pages{c: newCollection(
		s, types.CollectionPages, false,
		func(p types.Page) string { return p.ID },
		func() []types.Page { return s.seedPages() },
	)}
}

func (r *pages) All() ([]types.Page, error) {
	r.c.store.mu.Lock()
	defer r.c.store.mu.Unlock()
	return r.c.load()
}

func (r *pages) Get(id string) (types.Page, error) {
	r.c.store.mu.Lock()
	defer r.c.store.mu.Unlock()
	return r.c.get(id)
}

// GetBySlug returns the first page in stored order with the given slug.
// Slugs are not unique; a duplicate created later never shadows the
// earlier insertion.
func (r *pages) GetBySlug(slug string) (types.Page, error) {
	r.c.store.mu.Lock()
	defer r.c.store.mu.Unlock()
	return r.c.find(func(p types.Page) bool { return p.Slug == slug })
}

func (r *pages) Create(p types.Page) (types.Page, error) {
	r.c.store.mu.Lock()
	defer r.c.store.mu.Unlock()

	p.ID = newID()
	p.UpdatedAt = r.c.store.timestamp()
	if err := r.c.insert(p); err != nil {
		return types.Page{}, err
	}
	return p, nil
}

func (r *pages) Update(id string, patch types.PagePatch) (types.Page, error) {
	r.c.store.mu.Lock()
	defer r.c.store.mu.Unlock()

	return r.c.update(id, func(p *types.Page) {
		if patch.Title != nil {
			p.Title = *patch.Title
		}
		if patch.Slug != nil {
			p.Slug = *patch.Slug
		}
		if patch.Content != nil {
			p.Content = *patch.Content
		}
		if patch.Status != nil {
			p.Status = *patch.Status
		}
		if patch.ParentID != nil {
			p.ParentID = *patch.ParentID
		}
		if patch.CoverImage != nil {
			p.CoverImage = *patch.CoverImage
		}
		if patch.Order != nil {
			p.Order = *patch.Order
		}
		p.UpdatedAt = r.c.store.timestamp()
	})
}

func (r *pages) Delete(id string) error {
	r.c.store.mu.Lock()
	defer r.c.store.mu.Unlock()
	return r.c.removeAll([]string{id}, nil)
}

func (r *pages) DeleteMany(ids []string) error {
	r.c.store.mu.Lock()
	defer r.c.store.mu.Unlock()
	return r.c.removeAll(ids, nil)
}
