package domain

import "slices"

// Role represents an operator role carried in the access token
type Role string

const (
	// RoleAdmin manages everything, including consistency sweeps
	RoleAdmin Role = "admin"

	// RoleManager edits rooms, tenants and payments
	RoleManager Role = "manager"

	// RoleStaff has read-only access to rooms, tenants, payments and revenue
	RoleStaff Role = "staff"
)

// ValidRoles lists roles from most to least privileged
var ValidRoles = []Role{RoleAdmin, RoleManager, RoleStaff}

// IsValidRole checks if a given role is valid
func IsValidRole(role string) bool {
	return slices.Contains(ValidRoles, Role(role))
}

// Grants reports whether holding r satisfies a requirement for required.
// Roles are hierarchical: admin grants manager and staff, manager grants staff.
func (r Role) Grants(required Role) bool {
	held := slices.Index(ValidRoles, r)
	want := slices.Index(ValidRoles, required)
	if held < 0 || want < 0 {
		return false
	}
	return held <= want
}

// HasRole checks if any of the given roles grants the required one
func HasRole(roles []string, required Role) bool {
	for _, role := range roles {
		if Role(role).Grants(required) {
			return true
		}
	}
	return false
}
