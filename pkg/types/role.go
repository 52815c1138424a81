package types

// Permission names an admin capability. The set is closed; role editors
// pick from these values.
type Permission string

const (
	PermViewDashboard    Permission = "view_dashboard"
	PermManageArticles   Permission = "manage_articles"
	PermManageCategories Permission = "manage_categories"
	PermManagePages      Permission = "manage_pages"
	PermManageUsers      Permission = "manage_users"
	PermManageRoles      Permission = "manage_roles"
	PermManageSettings   Permission = "manage_settings"
	PermManageEvents     Permission = "manage_events"
	PermManageMedia      Permission = "manage_media"
)

// AllPermissions returns the full permission set in declaration order.
// The seeded admin role carries exactly this set.
func AllPermissions() []Permission {
	return []Permission{
		PermViewDashboard,
		PermManageArticles,
		PermManageCategories,
		PermManagePages,
		PermManageUsers,
		PermManageRoles,
		PermManageSettings,
		PermManageEvents,
		PermManageMedia,
	}
}

// RoleAdminID is the well-known id of the seeded administrator role.
// Access checks branch on it directly and Roles.Delete refuses to remove
// it, so the literal value is part of the stored-data contract.
const RoleAdminID = "role_admin"

// Well-known ids of the other seeded roles.
const (
	RoleEditorID = "role_editor"
	RoleUserID   = "role_user"
)

// Role is a named permission set. Users reference roles by id.
type Role struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Permissions []Permission `json:"permissions"`
}

// Has reports whether the role carries the given permission.
func (r Role) Has(p Permission) bool {
	for _, have := range r.Permissions {
		if have == p {
			return true
		}
	}
	return false
}

// RolePatch carries a partial update. Permissions is replaced wholesale
// when present.
type RolePatch struct {
	Name        *string       `json:"name,omitempty"`
	Description *string       `json:"description,omitempty"`
	Permissions *[]Permission `json:"permissions,omitempty"`
}
