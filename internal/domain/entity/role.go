package entity

import (
	"slices"
	"strings"
)

// Role is the fixed account type of a user.
type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	// RoleSeller lists products. Sellers stay inactive until an admin approves them.
	RoleSeller Role = "SELLER"
	// RoleAdmin moderates the marketplace. New admins also need approval.
	RoleAdmin Role = "ADMIN"
)

var allRoles = []Role{RoleCustomer, RoleSeller, RoleAdmin}

func (r Role) String() string {
	return string(r)
}

// ParseRole accepts a role name in any letter case.
func ParseRole(s string) (Role, bool) {
	role := Role(strings.ToUpper(strings.TrimSpace(s)))
	if !slices.Contains(allRoles, role) {
		return "", false
	}

	return role, true
}

// Roles is the role set carried by an access token.
type Roles []Role

func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// Strings renders the roles for the token claims.
func (rs Roles) Strings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// RolesFromStrings parses token claims, dropping names that are not roles.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		if role, ok := ParseRole(s); ok {
			result = append(result, role)
		}
	}

	return result
}
