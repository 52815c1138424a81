package types

// User is an admin-console account. Email is treated as a lookup key by
// convention only; the store never enforces uniqueness. Password is stored
// in plaintext and compared by the login layer, a demo-grade mechanism
// rather than a security boundary.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Password  string `json:"password,omitempty"`
	Name      string `json:"name"`
	RoleID    string `json:"roleId"`
	CreatedAt string `json:"createdAt"`
}

// UserPatch carries a partial update for a user.
type UserPatch struct {
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
	Name     *string `json:"name,omitempty"`
	RoleID   *string `json:"roleId,omitempty"`
}
