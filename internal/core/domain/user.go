package domain

import "regexp"

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidEmail reports whether s is an acceptable account email.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// User models an account that can log in to the back office.
type User struct {
	ID           int64  `json:"id"`
	Name         string `json:"nombre"`
	Email        string `json:"correo"`
	PasswordHash string `json:"-"`
	RoleID       Role   `json:"perfil_id"`
}

// UserSummary is the listing projection of a user joined with its role name.
type UserSummary struct {
	Name     string `json:"nombre"`
	Email    string `json:"correo"`
	RoleName string `json:"perfil"`
}

// UserChanges is the set of columns a partial update writes. A nil field is
// left untouched.
type UserChanges struct {
	Email        *string
	Name         *string
	PasswordHash *string
	RoleID       *Role
}

// IsEmpty reports whether applying the changes would write nothing.
func (c UserChanges) IsEmpty() bool {
	return c.Email == nil && c.Name == nil && c.PasswordHash == nil && c.RoleID == nil
}

// Identity is the caller decoded from a session token. The zero value is an
// anonymous caller that holds no role.
type Identity struct {
	UserID int64
	Email  string
	RoleID Role
}

// IsZero reports whether the identity carries no usable user.
func (i Identity) IsZero() bool {
	return i.UserID <= 0 || !i.RoleID.Valid()
}
