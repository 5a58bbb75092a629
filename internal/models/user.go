package models

import "strings"

// Role is the flat faculty/student distinction. Roles are stored lowercased
// and compared case-insensitively.
type Role string

const (
	RoleFaculty Role = "faculty"
	RoleStudent Role = "student"
)

// User is an account row. Passwords are stored and compared as plaintext to
// stay wire-compatible with the legacy service; see DESIGN.md.
type User struct {
	Username string `db:"username" json:"username"`
	Password string `db:"password" json:"-"`
	Role     string `db:"role" json:"role"`
	Email    string `db:"email" json:"email"`
}

// IsStudent reports whether the given role names a student, ignoring case.
func IsStudent(role string) bool {
	return strings.EqualFold(role, string(RoleStudent))
}
