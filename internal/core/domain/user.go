package domain

// Role identifies the privilege level of a user account.
type Role string

// Supported roles.
const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Valid reports whether the role is one of the supported values.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// User is the public projection of a user account. It never carries
// credentials and is safe to store in the session table and to serialize
// in API responses.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

// UserWithPassword is the stored form of a user account. Passwords are kept
// in plaintext: this is a demo backend and credential hardening is an
// explicit non-goal.
type UserWithPassword struct {
	User
	Password string `json:"-"`
}

// Public returns the password-stripped projection of the account.
func (u *UserWithPassword) Public() User {
	return u.User
}
