package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/pantry/pkg/types"
)

func TestSettingsSeedDefaults(t *testing.T) {
	s := setupStore(t)

	doc, err := s.Settings().Get()
	require.NoError(t, err)

	assert.False(t, doc.IsSetup)
	assert.Equal(t, types.ThemeAuto, doc.ThemeMode)
	assert.Equal(t, 6, doc.PostsPerPage)
	assert.True(t, doc.Maintenance.Enabled, "maintenance starts enabled until an admin opens the site")
	assert.NotEmpty(t, doc.Maintenance.Reason)

	// A second read returns the identical document without reseeding.
	again, err := s.Settings().Get()
	require.NoError(t, err)
	assert.Equal(t, doc, again)
}

func TestSettingsUpdateShallowMerge(t *testing.T) {
	s := setupStore(t)

	name := "Renamed Site"
	setup := true
	updated, err := s.Settings().Update(types.SettingsPatch{
		SiteName: &name,
		IsSetup:  &setup,
	})
	require.NoError(t, err)

	assert.Equal(t, "Renamed Site", updated.SiteName)
	assert.True(t, updated.IsSetup)
	// Untouched top-level fields survive.
	assert.Equal(t, 6, updated.PostsPerPage)
	assert.True(t, updated.Maintenance.Enabled)
}

func TestSettingsNestedObjectsReplacedWholesale(t *testing.T) {
	s := setupStore(t)

	// Establish a maintenance object with a reason and window.
	_, err := s.Settings().Update(types.SettingsPatch{
		Maintenance: &types.MaintenanceSettings{
			Enabled:   false,
			StartTime: "2026-09-01T00:00:00Z",
			EndTime:   "2026-09-02T00:00:00Z",
			Reason:    "Upgrading storage",
		},
	})
	require.NoError(t, err)

	// Resending only {enabled: true} drops the sibling fields: the
	// nested object is replaced, never deep-merged.
	_, err = s.Settings().Update(types.SettingsPatch{
		Maintenance: &types.MaintenanceSettings{Enabled: true},
	})
	require.NoError(t, err)

	doc, err := s.Settings().Get()
	require.NoError(t, err)
	assert.Equal(t, types.MaintenanceSettings{Enabled: true}, doc.Maintenance)
}

func TestSettingsSocialLinksReplacedWholesale(t *testing.T) {
	s := setupStore(t)

	_, err := s.Settings().Update(types.SettingsPatch{
		SocialLinks: &types.SocialLinks{Twitter: "https://twitter.com/pantry"},
	})
	require.NoError(t, err)

	doc, err := s.Settings().Get()
	require.NoError(t, err)
	assert.Equal(t, "https://twitter.com/pantry", doc.SocialLinks.Twitter)
	assert.Empty(t, doc.SocialLinks.GitHub, "seeded github link dropped with the replaced object")
}

func TestSettingsOnChange(t *testing.T) {
	s := setupStore(t)

	var notified []types.SiteSettings
	s.Settings().OnChange(func(doc types.SiteSettings) {
		notified = append(notified, doc)
	})

	// Reads never notify.
	_, err := s.Settings().Get()
	require.NoError(t, err)
	assert.Empty(t, notified)

	name := "Observed"
	updated, err := s.Settings().Update(types.SettingsPatch{SiteName: &name})
	require.NoError(t, err)

	require.Len(t, notified, 1)
	assert.Equal(t, updated, notified[0])

	// Subscribers can call back into the store without deadlocking.
	s.Settings().OnChange(func(types.SiteSettings) {
		_, _ = s.Settings().Get()
	})
	_, err = s.Settings().Update(types.SettingsPatch{SiteName: &name})
	require.NoError(t, err)
	assert.Len(t, notified, 2)
}

func TestSettingsMalformedDocumentFailsLoudly(t *testing.T) {
	s := setupStore(t)

	_, err := s.Settings().Get()
	require.NoError(t, err)
	require.NoError(t, s.kv.Set(s.key(types.CollectionSettings), "not json"))

	_, err = s.Settings().Get()
	assert.ErrorIs(t, err, types.ErrMalformedRecord)
}
