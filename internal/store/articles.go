package store

import "github.com/mesh-intelligence/pantry/pkg/types"

// articles implements types.ArticleRepository. New articles are
// prepended so stored order is newest-created first.
type articles struct {
	c *collection[types.Article]
}

func newArticles(s *Store) *articles {
	return &articles{c: newCollection(
		s, types.CollectionArticles, true,
		func(a types.Article) string { return a.ID },
		func() []types.Article { return s.seedArticles() },
	)}
}

func (r *articles) All() ([]types.Article, error) {
	r.c.store.mu.Lock()
	defer r.c.store.mu.Unlock()
	return r.c.load()
}

func (r *articles) Get(id string) (types.Article, error) {
	r.c.store.mu.Lock()
	defer r.c.store.mu.Unlock()
	return r.c.get(id)
}

// Create assigns a fresh id and creation timestamps; any id or
// timestamps supplied by the caller are overwritten.
func (r *articles) Create(a types.Article) (types.Article, error) {
	r.c.store.mu.Lock()
	defer r.c.store.mu.Unlock()

	now := r.c.store.timestamp()
	a.ID = newID()
	a.CreatedAt = now
	a.UpdatedAt = now
	if err := r.c.insert(a); err != nil {
		return types.Article{}, err
	}
	return a, nil
}

// Update shallow-merges patch onto the stored record. UpdatedAt is
// refreshed whether or not any field changed.
func (r *articles) Update(id string, patch types.ArticlePatch) (types.Article, error) {
	r.c.store.mu.Lock()
	defer r.c.store.mu.Unlock()

	return r.c.update(id, func(a *types.Article) {
		if patch.Title != nil {
			a.Title = *patch.Title
		}
		if patch.Summary != nil {
			a.Summary = *patch.Summary
		}
		if patch.Content != nil {
			a.Content = *patch.Content
		}
		if patch.CoverImage != nil {
			a.CoverImage = *patch.CoverImage
		}
		if patch.Status != nil {
			a.Status = *patch.Status
		}
		if patch.CategoryID != nil {
			a.CategoryID = *patch.CategoryID
		}
		if patch.Tags != nil {
			a.Tags = *patch.Tags
		}
		if patch.IsSticky != nil {
			a.IsSticky = *patch.IsSticky
		}
		if patch.StickyOrder != nil {
			a.StickyOrder = *patch.StickyOrder
		}
		a.UpdatedAt = r.c.store.timestamp()
	})
}

func (r *articles) Delete(id string) error {
	r.c.store.mu.Lock()
	defer r.c.store.mu.Unlock()
	return r.c.removeAll([]string{id}, nil)
}

func (r *articles) DeleteMany(ids []string) error {
	r.c.store.mu.Lock()
	defer r.c.store.mu.Unlock()
	return r.c.removeAll(ids, nil)
}
