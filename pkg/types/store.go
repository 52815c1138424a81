package types

import (
	"encoding/json"
	"errors"
)

// Collection names. Each collection is stored under one key of the form
// "<prefix>_<name>"; the settings singleton shares the same scheme.
const (
	CollectionArticles   = "articles"
	CollectionPages      = "pages"
	CollectionCategories = "categories"
	CollectionSettings   = "settings"
	CollectionUsers      = "users"
	CollectionRoles      = "roles"
	CollectionEvents     = "events"
	CollectionMedia      = "media"
)

// Collections lists every collection name in backup-file order.
func Collections() []string {
	return []string{
		CollectionArticles,
		CollectionPages,
		CollectionCategories,
		CollectionSettings,
		CollectionUsers,
		CollectionRoles,
		CollectionEvents,
		CollectionMedia,
	}
}

// StorageKey returns the backing key for a collection under a prefix.
func StorageKey(prefix, collection string) string {
	return prefix + "_" + collection
}

// Repository operation errors.
var (
	ErrNotFound        = errors.New("record not found")
	ErrInvalidID       = errors.New("invalid record id")
	ErrProtectedRecord = errors.New("record is protected")
	ErrMalformedRecord = errors.New("stored value is malformed")
)

// ArticleRepository owns the articles collection. All returns records in
// stored order, newest-created first (creation prepends).
type ArticleRepository interface {
	All() ([]Article, error)
	Get(id string) (Article, error)
	Create(a Article) (Article, error)
	Update(id string, patch ArticlePatch) (Article, error)
	Delete(id string) error
	DeleteMany(ids []string) error
}

// PageRepository owns the pages collection. Creation appends, so stored
// order is oldest first. GetBySlug is a first-match scan in stored order;
// duplicate slugs are legal and the earlier insertion wins.
type PageRepository interface {
	All() ([]Page, error)
	Get(id string) (Page, error)
	GetBySlug(slug string) (Page, error)
	Create(p Page) (Page, error)
	Update(id string, patch PagePatch) (Page, error)
	Delete(id string) error
	DeleteMany(ids []string) error
}

// CategoryRepository owns the categories collection. Creation prepends.
type CategoryRepository interface {
	All() ([]Category, error)
	Get(id string) (Category, error)
	Create(c Category) (Category, error)
	Update(id string, patch CategoryPatch) (Category, error)
	Delete(id string) error
	DeleteMany(ids []string) error
}

// EventRepository owns the events collection. Creation appends.
type EventRepository interface {
	All() ([]Event, error)
	Get(id string) (Event, error)
	Create(e Event) (Event, error)
	Update(id string, patch EventPatch) (Event, error)
	Delete(id string) error
	DeleteMany(ids []string) error
}

// MediaRepository owns the media collection. Creation prepends. The seed
// set is empty; the collection still seeds (to an empty list) on first
// read so later reads never reseed.
type MediaRepository interface {
	All() ([]Media, error)
	Get(id string) (Media, error)
	Create(m Media) (Media, error)
	Update(id string, patch MediaPatch) (Media, error)
	Delete(id string) error
	DeleteMany(ids []string) error
}

// UserRepository owns the users collection. Creation appends. GetByEmail
// is a first-match scan; the store never enforces email uniqueness.
type UserRepository interface {
	All() ([]User, error)
	Get(id string) (User, error)
	GetByEmail(email string) (User, error)
	Create(u User) (User, error)
	Update(id string, patch UserPatch) (User, error)
	Delete(id string) error
	DeleteMany(ids []string) error
}

// RoleRepository owns the roles collection. Creation appends. Delete and
// DeleteMany refuse to remove RoleAdminID: Delete returns
// ErrProtectedRecord, DeleteMany silently keeps it.
type RoleRepository interface {
	All() ([]Role, error)
	Get(id string) (Role, error)
	Create(r Role) (Role, error)
	Update(id string, patch RolePatch) (Role, error)
	Delete(id string) error
	DeleteMany(ids []string) error
}

// SettingsRepository owns the singleton settings document.
type SettingsRepository interface {
	// Get returns the document, seeding the default on first access.
	Get() (SiteSettings, error)

	// Update shallow-merges patch onto the current document at the top
	// level only (nested objects replaced wholesale when present),
	// persists, notifies subscribers, and returns the result.
	Update(patch SettingsPatch) (SiteSettings, error)

	// OnChange registers fn to run synchronously with the new document
	// after every successful Update. Subscribers cannot unregister;
	// they live for the life of the store.
	OnChange(fn func(SiteSettings))
}

// Store is the root data-access contract. One Store owns one durable
// backend; operations are serialized internally, but there is no
// cross-process coordination: two processes on the same data directory
// race at whole-collection granularity, last write wins. Intended use is
// a single process at a time.
type Store interface {
	Articles() ArticleRepository
	Pages() PageRepository
	Categories() CategoryRepository
	Events() EventRepository
	Media() MediaRepository
	Users() UserRepository
	Roles() RoleRepository
	Settings() SettingsRepository

	// Export returns a backup object keyed by the full storage keys,
	// each mapping to the collection's current JSON value. Collections
	// never read before are exported as their seeded defaults.
	Export() (map[string]json.RawMessage, error)

	// Import overwrites collections key-by-key from a backup object
	// without interpreting payloads. Unknown keys are ignored.
	Import(backup map[string]json.RawMessage) error

	// Reset clears the backend entirely. The next reads reseed.
	Reset() error

	// Close releases the backend. Idempotent; operations after Close
	// return ErrStoreClosed.
	Close() error
}
