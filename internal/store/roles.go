package store

import "github.com/mesh-intelligence/pantry/pkg/types"

// roles implements types.RoleRepository. New roles are appended. The
// seeded administrator role is protected: Delete surfaces
// ErrProtectedRecord and DeleteMany silently keeps it, so
// Get(RoleAdminID) succeeds for the life of the installation.
type roles struct {
	c *collection[types.Role]
}

func newRoles(s *Store) *roles {
	return &roles{c: newCollection(
		s, types.CollectionRoles, false,
		func(r types.Role) string { return r.ID },
		seedRoles,
	)}
}

func (r *roles) All() ([]types.Role, error) {
	r.c.store.mu.Lock()
	defer r.c.store.mu.Unlock()
	return r.c.load()
}

func (r *roles) Get(id string) (types.Role, error) {
	r.c.store.mu.Lock()
	defer r.c.store.mu.Unlock()
	return r.c.get(id)
}

func (r *roles) Create(role types.Role) (types.Role, error) {
	r.c.store.mu.Lock()
	defer r.c.store.mu.Unlock()

	role.ID = newID()
	if role.Permissions == nil {
		role.Permissions = []types.Permission{}
	}
	if err := r.c.insert(role); err != nil {
		return types.Role{}, err
	}
	return role, nil
}

func (r *roles) Update(id string, patch types.RolePatch) (types.Role, error) {
	r.c.store.mu.Lock()
	defer r.c.store.mu.Unlock()

	return r.c.update(id, func(role *types.Role) {
		if patch.Name != nil {
			role.Name = *patch.Name
		}
		if patch.Description != nil {
			role.Description = *patch.Description
		}
		if patch.Permissions != nil {
			role.Permissions = *patch.Permissions
		}
	})
}

func (r *roles) Delete(id string) error {
	r.c.store.mu.Lock()
	defer r.c.store.mu.Unlock()

	if id == types.RoleAdminID {
		return types.ErrProtectedRecord
	}
	return r.c.removeAll([]string{id}, nil)
}

func (r *roles) DeleteMany(ids []string) error {
	r.c.store.mu.Lock()
	defer r.c.store.mu.Unlock()
	return r.c.removeAll(ids, func(id string) bool { return id == types.RoleAdminID })
}
