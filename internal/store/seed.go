package store

import (
	"time"

	"github.com/mesh-intelligence/pantry/pkg/types"
)

// Seed data for first-run materialization. Every function returns a
// fresh slice so callers can never mutate records shared across reads.
// The literal ids (role_admin, admin_1, cat_1, "about", ...) are
// well-known: access checks, the protected-role guard, and the setup
// flow compare against them directly, so they are part of the contract.

const seedCoverImage = "/assets/placeholder.jpg"

func seedRoles() []types.Role {
	return []types.Role{
		{
			ID:          types.RoleAdminID,
			Name:        "Administrator",
			Description: "Full access to every part of the system",
			Permissions: types.AllPermissions(),
		},
		{
			ID:          types.RoleEditorID,
			Name:        "Editor",
			Description: "Can manage articles and pages",
			Permissions: []types.Permission{
				types.PermViewDashboard,
				types.PermManageArticles,
				types.PermManageCategories,
				types.PermManagePages,
				types.PermManageEvents,
				types.PermManageMedia,
			},
		},
		{
			ID:          types.RoleUserID,
			Name:        "User",
			Description: "Basic access only",
			Permissions: []types.Permission{},
		},
	}
}

// SeedAdminUserID is the well-known id of the seeded administrator
// account; the setup flow looks it up directly.
const SeedAdminUserID = "admin_1"

func (s *Store) seedUsers() []types.User {
	return []types.User{
		{
			ID:        SeedAdminUserID,
			Email:     "admin@example.com",
			Password:  "password",
			Name:      "System Admin",
			RoleID:    types.RoleAdminID,
			CreatedAt: s.timestamp(),
		},
	}
}

func (s *Store) seedCategories() []types.Category {
	now := s.timestamp()
	return []types.Category{
		{ID: "cat_1", Name: "Tech Tutorials", Slug: "tech-tutorial", Color: "is-info", CreatedAt: now},
		{ID: "cat_2", Name: "Announcements", Slug: "announcement", Color: "is-warning", CreatedAt: now},
		{ID: "cat_3", Name: "Life Notes", Slug: "life", Color: "is-success", CreatedAt: now},
	}
}

func (s *Store) seedArticles() []types.Article {
	now := s.timestamp()
	dayAgo := s.now().UTC().Add(-24 * time.Hour).Format(time.RFC3339Nano)
	return []types.Article{
		{
			ID:          "1",
			Title:       "Welcome to Pantry CMS",
			Summary:     "A sample article from the built-in content set.",
			Content:     "## Welcome\n\nPantry CMS is a lightweight single-page content manager.\n\nIt ships with:\n- Article management\n- Page management\n- A responsive public site\n- Light and dark themes",
			CoverImage:  seedCoverImage,
			Status:      types.StatusPublished,
			CategoryID:  "cat_2",
			Tags:        []string{"announcement", "pantry"},
			IsSticky:    true,
			StickyOrder: 1,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:         "2",
			Title:      "Designing a Minimal Admin Console",
			Summary:    "Why a small, predictable editing surface beats a configurable one.",
			Content:    "A content manager earns its keep by staying out of the way...",
			CoverImage: seedCoverImage,
			Status:     types.StatusPublished,
			CategoryID: "cat_1",
			Tags:       []string{"css", "frontend", "design"},
			CreatedAt:  dayAgo,
			UpdatedAt:  dayAgo,
		},
	}
}

// Page seeds carry raw HTML; renderers treat content starting with "<"
// as HTML rather than markdown.
func (s *Store) seedPages() []types.Page {
	now := s.timestamp()
	return []types.Page{
		{
			ID:     "about",
			Title:  "About Us",
			Slug:   "about",
			Status: types.StatusPublished,
			Content: `<div class="ts-content is-center-aligned">
    <div class="ts-header is-huge">Committed to craft</div>
    <div class="ts-text is-large is-secondary mt-2">We are a small team of developers focused on building a better web.</div>
</div>`,
			UpdatedAt: now,
		},
		{
			ID:     "contact",
			Title:  "Contact",
			Slug:   "contact",
			Status: types.StatusPublished,
			Content: `<div class="ts-grid is-2-columns is-relaxed is-stackable">
    <div class="column">
        <div class="ts-header is-huge mb-4">Get in touch</div>
        <p class="ts-text is-large is-secondary mb-6">Questions or ideas? Drop us a line any time.</p>
    </div>
</div>`,
			UpdatedAt: now,
		},
	}
}

func (s *Store) seedEvents() []types.Event {
	inFiveDays := s.now().UTC().Add(5 * 24 * time.Hour).Format(time.RFC3339Nano)
	return []types.Event{
		{
			ID:          "ev_1",
			Title:       "Pantry CMS Launch",
			Description: "The v1.0 release event. Everyone is welcome.",
			StartDate:   inFiveDays,
			EndDate:     inFiveDays,
			Location:    "Community Hall",
			CreatedAt:   s.timestamp(),
		},
	}
}

// Media seeds empty: the collection still materializes (to an empty
// list) on first read so later reads never reseed.
func seedMedia() []types.Media {
	return []types.Media{}
}

// defaultSettings is the seeded singleton document. IsSetup false routes
// first visitors into the setup wizard; maintenance starts enabled so
// the public site stays closed until an admin opens it.
func defaultSettings() types.SiteSettings {
	return types.SiteSettings{
		IsSetup:            false,
		SiteName:           "My Pantry Site",
		EnableRegistration: false,
		ThemeMode:          types.ThemeAuto,
		PostsPerPage:       6,
		Maintenance: types.MaintenanceSettings{
			Enabled: true,
			Reason:  "The site is undergoing routine maintenance. Please check back soon.",
		},
		HeroTitle:             "Welcome to Pantry CMS",
		HeroDescription:       "Browse the latest articles and announcements.",
		FooterText:            "© 2026 Pantry CMS Project. All rights reserved.",
		FooterDescription:     "Pantry CMS aims to be the simplest way to run a small site.",
		FooterBackgroundColor: "#f7f7f7",
		FooterTextColor:       "#5c5c5c",
		SocialLinks: types.SocialLinks{
			Facebook: "https://facebook.com",
			Twitter:  "https://twitter.com",
			GitHub:   "https://github.com/mesh-intelligence/pantry",
		},
		ContactInfo: types.ContactInfo{
			Address: "100 Main Street",
			Phone:   "+1 555 0100",
			Email:   "contact@example.com",
		},
	}
}
