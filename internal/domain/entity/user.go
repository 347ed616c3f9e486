// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// User is an account of the system.
type User struct {
	ID       int64  // Assigned by the store on first save; zero until then.
	Username string // Unique across all persisted users.
	Password string // Plaintext on input, a hex digest once the user service has processed it.
	Email    string
	Role     Role // Empty means no role, which the validator rejects.
	Active   bool // False on bare construction; the user service sets it on creation.
}

// NewUser builds an unpersisted, active user.
func NewUser(username, password, email string, role Role) *User {
	return &User{
		Username: username,
		Password: password,
		Email:    email,
		Role:     role,
		Active:   true,
	}
}

// IsPersisted reports whether the user has been assigned an identifier.
func (u *User) IsPersisted() bool {
	return u != nil && u.ID != 0
}

// Clone returns a copy of the user so callers can mutate it freely.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	clone := *u

	return &clone
}
