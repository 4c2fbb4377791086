package models

// Role is the closed set of actor roles. Authorization code switches on
// these constants rather than comparing free-form strings.
type Role string

const (
	RoleSuperAdmin Role = "superadmin"
	RoleAdmin      Role = "admin"
	RoleStudent    Role = "student"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleStudent:
		return true
	}
	return false
}
