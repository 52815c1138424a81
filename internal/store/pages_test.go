package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/pantry/pkg/types"
)

func TestPageCreateAppends(t *testing.T) {
	s := setupStore(t)

	created, err := s.Pages().Create(types.Page{
		Title:  "Team",
		Slug:   "team",
		Status: types.StatusDraft,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.NotEmpty(t, created.UpdatedAt)

	all, err := s.Pages().All()
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, created.ID, all[2].ID, "pages append after the seeds")
}

func TestPageGetBySlug(t *testing.T) {
	s := setupStore(t)

	page, err := s.Pages().GetBySlug("about")
	require.NoError(t, err)
	assert.Equal(t, "about", page.ID)

	_, err = s.Pages().GetBySlug("no-such-slug")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestPageDuplicateSlugFirstInsertionWins(t *testing.T) {
	s := setupStore(t)

	first, err := s.Pages().Create(types.Page{Title: "Original", Slug: "pricing"})
	require.NoError(t, err)

	// A duplicate slug is accepted without error...
	second, err := s.Pages().Create(types.Page{Title: "Shadowed", Slug: "pricing"})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	// ...and resolution deterministically returns the earlier insertion.
	got, err := s.Pages().GetBySlug("pricing")
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)
}

func TestPageUpdateRefreshesUpdatedAt(t *testing.T) {
	s := setupStore(t)

	created, err := s.Pages().Create(types.Page{Title: "Draft", Slug: "draft"})
	require.NoError(t, err)

	parent := "about"
	order := 3
	updated, err := s.Pages().Update(created.ID, types.PagePatch{
		ParentID: &parent,
		Order:    &order,
	})
	require.NoError(t, err)

	assert.Equal(t, "about", updated.ParentID)
	assert.Equal(t, 3, updated.Order)
	assert.Equal(t, "Draft", updated.Title)
	assert.NotEqual(t, created.UpdatedAt, updated.UpdatedAt)
}

func TestPageParentReferenceIsNotEnforced(t *testing.T) {
	s := setupStore(t)

	// A dangling parent id is stored as-is; readers tolerate the miss.
	created, err := s.Pages().Create(types.Page{Title: "Orphan", Slug: "orphan", ParentID: "gone"})
	require.NoError(t, err)

	got, err := s.Pages().Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "gone", got.ParentID)

	_, err = s.Pages().Get("gone")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestPageDeleteMany(t *testing.T) {
	s, kv := setupCountingStore(t)

	a, err := s.Pages().Create(types.Page{Title: "A", Slug: "a"})
	require.NoError(t, err)
	b, err := s.Pages().Create(types.Page{Title: "B", Slug: "b"})
	require.NoError(t, err)

	writes := kv.sets
	require.NoError(t, s.Pages().DeleteMany([]string{a.ID, b.ID}))
	assert.Equal(t, writes+1, kv.sets)

	all, err := s.Pages().All()
	require.NoError(t, err)
	assert.Len(t, all, 2, "only the seeds remain")
}
