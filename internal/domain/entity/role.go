// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of role a user can have in the system.
// It is stored and transported by its name.
type Role string

const (
	// RoleAdmin manages every account.
	RoleAdmin Role = "ADMIN"
	// RoleUser is a regular, read-only account.
	RoleUser Role = "USER"
	// RoleGuest is a visitor account.
	RoleGuest Role = "GUEST"
	// RoleMedico is a physician account.
	RoleMedico Role = "MEDICO"
	// RoleTerapeuta is a therapist account.
	RoleTerapeuta Role = "TERAPEUTA"
)

type roleTraits struct {
	description string
	canManage   bool
}

// Only USER loses the create/edit/delete actions; every other role keeps them.
var roleTable = map[Role]roleTraits{
	RoleAdmin:     {description: "Administrator", canManage: true},
	RoleUser:      {description: "User", canManage: false},
	RoleGuest:     {description: "Guest", canManage: true},
	RoleMedico:    {description: "Physician", canManage: true},
	RoleTerapeuta: {description: "Therapist", canManage: true},
}

// AllRoles lists the roles in their declaration order.
var AllRoles = Roles{RoleAdmin, RoleUser, RoleGuest, RoleMedico, RoleTerapeuta}

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	_, ok := roleTable[r]

	return ok
}

// Description returns the human readable name of the role, or "" for unknown roles.
func (r Role) Description() string {
	return roleTable[r].description
}

// CanManageUsers reports whether the role may create, edit and delete accounts.
func (r Role) CanManageUsers() bool {
	return roleTable[r].canManage
}

// ParseRole converts a role name into a Role. The second value is false when
// the name does not belong to the enumeration.
func ParseRole(s string) (Role, bool) {
	role := Role(s)
	if !role.IsValid() {
		return "", false
	}

	return role, true
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts Roles to []string.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// Managers returns the subset of roles allowed to manage users.
func (rs Roles) Managers() Roles {
	result := make(Roles, 0, len(rs))
	for _, r := range rs {
		if r.CanManageUsers() {
			result = append(result, r)
		}
	}

	return result
}
