package entity

import "slices"

// Role represents how a user relates to the weddings they plan.
type Role string

const (
	// RoleUser indicates a regular account with no declared wedding role.
	RoleUser Role = "user"
	// RoleBride indicates the account belongs to a bride.
	RoleBride Role = "bride"
	// RoleGroom indicates the account belongs to a groom.
	RoleGroom Role = "groom"
	// RoleParent indicates a parent of the couple.
	RoleParent Role = "parent"
	// RolePlanner indicates a professional planner managing multiple workspaces.
	RolePlanner Role = "planner"
	// RoleAdmin indicates an administrative account.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleBride, RoleGroom, RoleParent, RolePlanner, RoleAdmin:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts Roles to []string for JWT compatibility.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// RolesFromStrings converts []string to Roles, filtering out invalid role strings.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(s)
		if role.IsValid() {
			result = append(result, role)
		}
	}

	return result
}
