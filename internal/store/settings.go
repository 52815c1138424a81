package store

import (
	"encoding/json"
	"fmt"

	"github.com/mesh-intelligence/pantry/pkg/types"
)

// settings implements types.SettingsRepository over the singleton
// document. Subscribers registered with OnChange are invoked
// synchronously, outside the store lock, after every successful Update.
type settings struct {
	store       *Store
	subscribers []func(types.SiteSettings)
}

func newSettings(s *Store) *settings {
	return &settings{store: s}
}

// Get returns the document, seeding the default on first access. The
// seed runs only when the backing key is absent; a present-but-corrupt
// value fails with ErrMalformedRecord rather than reseeding.
func (r *settings) Get() (types.SiteSettings, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.load()
}

// load assumes the caller holds store.mu.
func (r *settings) load() (types.SiteSettings, error) {
	if r.store.closed {
		return types.SiteSettings{}, types.ErrStoreClosed
	}

	key := r.store.key(types.CollectionSettings)
	raw, ok, err := r.store.kv.Get(key)
	if err != nil {
		return types.SiteSettings{}, fmt.Errorf("loading settings: %w", err)
	}
	if !ok {
		seeded := defaultSettings()
		if err := r.persist(seeded); err != nil {
			return types.SiteSettings{}, fmt.Errorf("seeding settings: %w", err)
		}
		return seeded, nil
	}

	var doc types.SiteSettings
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return types.SiteSettings{}, fmt.Errorf("parsing settings: %w: %v", types.ErrMalformedRecord, err)
	}
	return doc, nil
}

// persist assumes the caller holds store.mu.
func (r *settings) persist(doc types.SiteSettings) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	if err := r.store.kv.Set(r.store.key(types.CollectionSettings), string(data)); err != nil {
		return fmt.Errorf("persisting settings: %w", err)
	}
	return nil
}

// Update shallow-merges patch onto the current document. The merge is
// top-level only: a non-nil Maintenance, SocialLinks, or ContactInfo in
// the patch replaces the stored nested object wholesale, dropping any
// sibling fields the caller did not resend. That surprise is the
// documented contract; deep-merging here would change behavior callers
// already depend on.
func (r *settings) Update(patch types.SettingsPatch) (types.SiteSettings, error) {
	r.store.mu.Lock()

	doc, err := r.load()
	if err != nil {
		r.store.mu.Unlock()
		return types.SiteSettings{}, err
	}

	if patch.IsSetup != nil {
		doc.IsSetup = *patch.IsSetup
	}
	if patch.SiteName != nil {
		doc.SiteName = *patch.SiteName
	}
	if patch.LogoURL != nil {
		doc.LogoURL = *patch.LogoURL
	}
	if patch.FaviconURL != nil {
		doc.FaviconURL = *patch.FaviconURL
	}
	if patch.EnableRegistration != nil {
		doc.EnableRegistration = *patch.EnableRegistration
	}
	if patch.ThemeMode != nil {
		doc.ThemeMode = *patch.ThemeMode
	}
	if patch.PostsPerPage != nil {
		doc.PostsPerPage = *patch.PostsPerPage
	}
	if patch.Maintenance != nil {
		doc.Maintenance = *patch.Maintenance
	}
	if patch.HeroTitle != nil {
		doc.HeroTitle = *patch.HeroTitle
	}
	if patch.HeroDescription != nil {
		doc.HeroDescription = *patch.HeroDescription
	}
	if patch.FooterText != nil {
		doc.FooterText = *patch.FooterText
	}
	if patch.FooterDescription != nil {
		doc.FooterDescription = *patch.FooterDescription
	}
	if patch.FooterBackgroundColor != nil {
		doc.FooterBackgroundColor = *patch.FooterBackgroundColor
	}
	if patch.FooterTextColor != nil {
		doc.FooterTextColor = *patch.FooterTextColor
	}
	if patch.SocialLinks != nil {
		doc.SocialLinks = *patch.SocialLinks
	}
	if patch.ContactInfo != nil {
		doc.ContactInfo = *patch.ContactInfo
	}

	if err := r.persist(doc); err != nil {
		r.store.mu.Unlock()
		return types.SiteSettings{}, err
	}

	subscribers := make([]func(types.SiteSettings), len(r.subscribers))
	copy(subscribers, r.subscribers)
	r.store.mu.Unlock()

	for _, fn := range subscribers {
		fn(doc)
	}
	return doc, nil
}

// OnChange registers fn to observe every successful Update. Consumers
// refreshing derived state (navigation, theme, maintenance gate) hang
// off this instead of a global event.
func (r *settings) OnChange(fn func(types.SiteSettings)) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.subscribers = append(r.subscribers, fn)
}
