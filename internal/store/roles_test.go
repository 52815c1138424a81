package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/pantry/pkg/types"
)

func TestRoleSeedSet(t *testing.T) {
	s := setupStore(t)

	roles, err := s.Roles().All()
	require.NoError(t, err)
	require.Len(t, roles, 3)
	assert.Equal(t, types.RoleAdminID, roles[0].ID)
	assert.Equal(t, types.RoleEditorID, roles[1].ID)
	assert.Equal(t, types.RoleUserID, roles[2].ID)

	// The admin role carries the full permission set.
	admin, err := s.Roles().Get(types.RoleAdminID)
	require.NoError(t, err)
	assert.Equal(t, types.AllPermissions(), admin.Permissions)

	// The basic role carries none.
	user, err := s.Roles().Get(types.RoleUserID)
	require.NoError(t, err)
	assert.Empty(t, user.Permissions)
}

func TestRoleAdminIsProtected(t *testing.T) {
	s := setupStore(t)

	err := s.Roles().Delete(types.RoleAdminID)
	require.ErrorIs(t, err, types.ErrProtectedRecord)

	// The record is still there.
	admin, err := s.Roles().Get(types.RoleAdminID)
	require.NoError(t, err)
	assert.Equal(t, types.RoleAdminID, admin.ID)
}

func TestRoleDeleteManyKeepsAdmin(t *testing.T) {
	s := setupStore(t)

	require.NoError(t, s.Roles().DeleteMany([]string{types.RoleAdminID, types.RoleEditorID}))

	roles, err := s.Roles().All()
	require.NoError(t, err)
	require.Len(t, roles, 2)
	assert.Equal(t, types.RoleAdminID, roles[0].ID)
	assert.Equal(t, types.RoleUserID, roles[1].ID)
}

func TestRoleCreateAndUpdate(t *testing.T) {
	s := setupStore(t)

	created, err := s.Roles().Create(types.Role{
		Name:        "Moderator",
		Description: "Handles comments",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.NotNil(t, created.Permissions)

	perms := []types.Permission{types.PermViewDashboard, types.PermManageArticles}
	updated, err := s.Roles().Update(created.ID, types.RolePatch{Permissions: &perms})
	require.NoError(t, err)
	assert.Equal(t, perms, updated.Permissions)
	assert.Equal(t, "Moderator", updated.Name)

	// A non-admin role deletes normally.
	require.NoError(t, s.Roles().Delete(created.ID))
	_, err = s.Roles().Get(created.ID)
	assert.ErrorIs(t, err, types.ErrNotFound)
}
