package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/pantry/pkg/types"
)

func TestSeedOnFirstReadOnly(t *testing.T) {
	tests := []struct {
		name  string
		check func(t *testing.T, s *Store)
	}{
		{
			name: "articles seed once and persist",
			check: func(t *testing.T, s *Store) {
				first, err := s.Articles().All()
				require.NoError(t, err)
				require.Len(t, first, 2)
				assert.Equal(t, "1", first[0].ID)
				assert.Equal(t, "2", first[1].ID)

				second, err := s.Articles().All()
				require.NoError(t, err)
				assert.Equal(t, first, second)
			},
		},
		{
			name: "categories carry the well-known ids",
			check: func(t *testing.T, s *Store) {
				cats, err := s.Categories().All()
				require.NoError(t, err)
				require.Len(t, cats, 3)
				assert.Equal(t, "cat_1", cats[0].ID)
				assert.Equal(t, "tech-tutorial", cats[0].Slug)
				assert.Equal(t, "cat_2", cats[1].ID)
				assert.Equal(t, "cat_3", cats[2].ID)
			},
		},
		{
			name: "pages seed with raw html content",
			check: func(t *testing.T, s *Store) {
				pages, err := s.Pages().All()
				require.NoError(t, err)
				require.Len(t, pages, 2)
				assert.Equal(t, "about", pages[0].ID)
				assert.Equal(t, "contact", pages[1].ID)
				assert.Equal(t, byte('<'), pages[0].Content[0], "seed pages are raw HTML")
			},
		},
		{
			name: "events seed a single upcoming event",
			check: func(t *testing.T, s *Store) {
				events, err := s.Events().All()
				require.NoError(t, err)
				require.Len(t, events, 1)
				assert.Equal(t, "ev_1", events[0].ID)
				assert.Equal(t, events[0].StartDate, events[0].EndDate)
			},
		},
		{
			name: "media seeds empty but still materializes",
			check: func(t *testing.T, s *Store) {
				items, err := s.Media().All()
				require.NoError(t, err)
				assert.Empty(t, items)

				// The key now exists: an explicitly empty collection is
				// a present value, not a reseed trigger.
				raw, ok, err := s.kv.Get(s.key(types.CollectionMedia))
				require.NoError(t, err)
				assert.True(t, ok)
				assert.Equal(t, "[]", raw)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, setupStore(t))
		})
	}
}

func TestEmptiedCollectionNeverReseeds(t *testing.T) {
	s := setupStore(t)

	require.NoError(t, s.Pages().DeleteMany([]string{"about", "contact"}))

	pages, err := s.Pages().All()
	require.NoError(t, err)
	assert.Empty(t, pages, "an emptied collection stays empty")
}

func TestSeedSlicesAreIndependent(t *testing.T) {
	s := setupStore(t)

	first, err := s.Roles().All()
	require.NoError(t, err)

	// Mutating a returned slice never leaks into later reads.
	first[0].Name = "tampered"
	first[0].Permissions[0] = "tampered"

	again, err := s.Roles().All()
	require.NoError(t, err)
	assert.Equal(t, "Administrator", again[0].Name)
	assert.Equal(t, types.PermViewDashboard, again[0].Permissions[0])
}
