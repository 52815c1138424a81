package store

import "github.com/mesh-intelligence/pantry/pkg/types"

// users implements types.UserRepository. New users are appended.
type users struct {
	c *collection[types.User]
}

func newUsers(s *Store) *users {
	return &users{c: newCollection(
		s, types.CollectionUsers, false,
		func(u types.User) string { return u.ID },
		func() []types.User { return s.seedUsers() },
	)}
}

func (r *users) All() ([]types.User, error) {
	r.c.store.mu.Lock()
	defer r.c.store.mu.Unlock()
	return r.c.load()
}

func (r *users) Get(id string) (types.User, error) {
	r.c.store.mu.Lock()
	defer r.c.store.mu.Unlock()
	return r.c.get(id)
}

// GetByEmail returns the first user in stored order with the given
// email. Uniqueness is a UI convention, not enforced here; a duplicate
// registered later is shadowed by the earlier account.
func (r *users) GetByEmail(email string) (types.User, error) {
	r.c.store.mu.Lock()
	defer r.c.store.mu.Unlock()
	return r.c.find(func(u types.User) bool { return u.Email == email })
}

func (r *users) Create(u types.User) (types.User, error) {
	r.c.store.mu.Lock()
	defer r.c.store.mu.Unlock()

	u.ID = newID()
	u.CreatedAt = r.c.store.timestamp()
	if err := r.c.insert(u); err != nil {
		return types.User{}, err
	}
	return u, nil
}

func (r *users) Update(id string, patch types.UserPatch) (types.User, error) {
	r.c.store.mu.Lock()
	defer r.c.store.mu.Unlock()

	return r.c.update(id, func(u *types.User) {
		if patch.Email != nil {
			u.Email = *patch.Email
		}
		if patch.Password != nil {
			u.Password = *patch.Password
		}
		if patch.Name != nil {
			u.Name = *patch.Name
		}
		if patch.RoleID != nil {
			u.RoleID = *patch.RoleID
		}
	})
}

func (r *users) Delete(id string) error {
	r.c.store.mu.Lock()
	defer r.c.store.mu.Unlock()
	return r.c.removeAll([]string{id}, nil)
}

func (r *users) DeleteMany(ids []string) error {
	r.c.store.mu.Lock()
	defer r.c.store.mu.Unlock()
	return r.c.removeAll(ids, nil)
}
