package domain

const (
	RoleOwner    = "owner"
	RoleCustomer = "customer"
)

// ValidRole reports whether role is one of the two marketplace roles.
func ValidRole(role string) bool {
	return role == RoleOwner || role == RoleCustomer
}

// User models a marketplace account. The password field is persisted as an
// opaque credential string: the plaintext itself under the default scheme, a
// bcrypt hash when credential hashing is enabled (see service.CredentialScheme).
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
	CreatedAt int64  `json:"createdAt"`
}

// SessionUser is the redacted view of a User exposed through the session.
// It deliberately carries no credential field.
type SessionUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Session is the currently authenticated identity. At most one is active per
// database document.
type Session struct {
	User SessionUser `json:"user"`
}

// Redact builds the session view of a user.
func (u *User) Redact() SessionUser {
	return SessionUser{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}
