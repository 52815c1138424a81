package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/pantry/internal/kvstore"
	"github.com/mesh-intelligence/pantry/pkg/types"
)

func TestArticleCreate(t *testing.T) {
	s := setupStore(t)

	created, err := s.Articles().Create(types.Article{
		Title:      "Release notes",
		Summary:    "What changed",
		Content:    "## Changes",
		Status:     types.StatusDraft,
		CategoryID: "cat_1",
		Tags:       []string{"release"},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	got, err := s.Articles().Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	// Creation prepends: the new article leads the seeded ones.
	all, err := s.Articles().All()
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, created.ID, all[0].ID)
}

func TestArticleCreateIgnoresCallerID(t *testing.T) {
	s := setupStore(t)

	created, err := s.Articles().Create(types.Article{
		ID:        "caller-chosen",
		Title:     "X",
		CreatedAt: "2001-01-01T00:00:00Z",
	})
	require.NoError(t, err)
	assert.NotEqual(t, "caller-chosen", created.ID)
	assert.NotEqual(t, "2001-01-01T00:00:00Z", created.CreatedAt)
}

func TestArticleIDsUnique(t *testing.T) {
	s := setupStore(t)

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		a, err := s.Articles().Create(types.Article{Title: "A"})
		require.NoError(t, err)
		assert.False(t, seen[a.ID], "duplicate id %s", a.ID)
		seen[a.ID] = true
	}
}

func TestArticleUpdate(t *testing.T) {
	s := setupStore(t)

	created, err := s.Articles().Create(types.Article{
		Title:   "Before",
		Summary: "Unchanged",
		Status:  types.StatusDraft,
		Tags:    []string{"a", "b"},
	})
	require.NoError(t, err)

	title := "After"
	status := types.StatusPublished
	updated, err := s.Articles().Update(created.ID, types.ArticlePatch{
		Title:  &title,
		Status: &status,
	})
	require.NoError(t, err)

	// Patched fields overwrite, the rest survive.
	assert.Equal(t, "After", updated.Title)
	assert.Equal(t, types.StatusPublished, updated.Status)
	assert.Equal(t, "Unchanged", updated.Summary)
	assert.Equal(t, []string{"a", "b"}, updated.Tags)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.NotEqual(t, created.UpdatedAt, updated.UpdatedAt)

	got, err := s.Articles().Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestArticleUpdateAlwaysRefreshesUpdatedAt(t *testing.T) {
	s := setupStore(t)

	created, err := s.Articles().Create(types.Article{Title: "A"})
	require.NoError(t, err)

	// An empty patch changes nothing but still touches UpdatedAt.
	updated, err := s.Articles().Update(created.ID, types.ArticlePatch{})
	require.NoError(t, err)
	assert.Equal(t, created.Title, updated.Title)
	assert.NotEqual(t, created.UpdatedAt, updated.UpdatedAt)
}

func TestArticleUpdateMissingIDWritesNothing(t *testing.T) {
	s := setupStore(t)

	before, err := s.Articles().All()
	require.NoError(t, err)

	title := "X"
	_, err = s.Articles().Update("no-such-id", types.ArticlePatch{Title: &title})
	require.ErrorIs(t, err, types.ErrNotFound)

	after, err := s.Articles().All()
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestArticleDelete(t *testing.T) {
	s := setupStore(t)

	created, err := s.Articles().Create(types.Article{Title: "A"})
	require.NoError(t, err)

	require.NoError(t, s.Articles().Delete(created.ID))
	_, err = s.Articles().Get(created.ID)
	assert.ErrorIs(t, err, types.ErrNotFound)

	// Deleting an absent id leaves the collection unchanged.
	before, err := s.Articles().All()
	require.NoError(t, err)
	require.NoError(t, s.Articles().Delete("no-such-id"))
	after, err := s.Articles().All()
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestArticleDeleteManySingleWrite(t *testing.T) {
	s, kv := setupCountingStore(t)

	a, err := s.Articles().Create(types.Article{Title: "A"})
	require.NoError(t, err)
	b, err := s.Articles().Create(types.Article{Title: "B"})
	require.NoError(t, err)
	c, err := s.Articles().Create(types.Article{Title: "C"})
	require.NoError(t, err)

	writes := kv.sets
	require.NoError(t, s.Articles().DeleteMany([]string{a.ID, c.ID, "no-such-id"}))
	assert.Equal(t, writes+1, kv.sets, "batch delete should persist once")

	_, err = s.Articles().Get(a.ID)
	assert.ErrorIs(t, err, types.ErrNotFound)
	_, err = s.Articles().Get(c.ID)
	assert.ErrorIs(t, err, types.ErrNotFound)

	// The untargeted article and the seeds are untouched.
	_, err = s.Articles().Get(b.ID)
	assert.NoError(t, err)
	all, err := s.Articles().All()
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestArticleMalformedCollectionFailsLoudly(t *testing.T) {
	s := setupStore(t)

	// Seed first, then corrupt the stored value behind the store's back.
	_, err := s.Articles().All()
	require.NoError(t, err)
	require.NoError(t, s.kv.Set(s.key(types.CollectionArticles), "{not json"))

	_, err = s.Articles().All()
	assert.ErrorIs(t, err, types.ErrMalformedRecord)

	// The corrupt value is preserved, never silently reseeded.
	raw, ok, err := s.kv.Get(s.key(types.CollectionArticles))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "{not json", raw)
}

func TestArticleWriteFailurePropagates(t *testing.T) {
	kv := kvstore.NewMemoryWithCapacity(2048)
	s := NewWithClock(kv, types.Config{Backend: types.BackendMemory}, newFakeClock().Now)
	t.Cleanup(func() { s.Close() })

	_, err := s.Articles().All()
	require.NoError(t, err)

	// A record too large for the remaining capacity surfaces the
	// backend error instead of losing data silently.
	_, err = s.Articles().Create(types.Article{Content: string(make([]byte, 4096))})
	assert.ErrorIs(t, err, types.ErrCapacityExceeded)
}
