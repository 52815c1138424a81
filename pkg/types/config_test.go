package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:    "empty backend",
			config:  Config{},
			wantErr: ErrBackendEmpty,
		},
		{
			name:    "unknown backend",
			config:  Config{Backend: "postgres", DataDir: "/tmp/x"},
			wantErr: ErrBackendUnknown,
		},
		{
			name:    "sqlite without data dir",
			config:  Config{Backend: BackendSQLite},
			wantErr: ErrDataDirEmpty,
		},
		{
			name:    "file without data dir",
			config:  Config{Backend: BackendFile},
			wantErr: ErrDataDirEmpty,
		},
		{
			name:   "memory without data dir",
			config: Config{Backend: BackendMemory},
		},
		{
			name:   "valid sqlite",
			config: Config{Backend: BackendSQLite, DataDir: "/tmp/x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestConfigPrefix(t *testing.T) {
	assert.Equal(t, DefaultKeyPrefix, Config{}.Prefix())
	assert.Equal(t, "tocas_cms", Config{KeyPrefix: "tocas_cms"}.Prefix())
}

func TestStorageKey(t *testing.T) {
	assert.Equal(t, "pantry_articles", StorageKey("pantry", CollectionArticles))
}

func TestRoleHas(t *testing.T) {
	r := Role{Permissions: []Permission{PermViewDashboard, PermManagePages}}
	assert.True(t, r.Has(PermManagePages))
	assert.False(t, r.Has(PermManageRoles))
}

func TestAllPermissionsCoversClosedSet(t *testing.T) {
	perms := AllPermissions()
	assert.Len(t, perms, 9)
	seen := make(map[Permission]bool, len(perms))
	for _, p := range perms {
		assert.False(t, seen[p], "duplicate permission %s", p)
		seen[p] = true
	}
}
