// Package entity contains the core business objects of the project.
package entity

import (
	"encoding/json"
	"slices"
	"strings"
)

// Role represents the account type of a marketplace identity.
type Role string

const (
	// RoleUnknown is the sanitized value for absent or unrecognised roles.
	RoleUnknown Role = ""
	// RoleClient indicates a buyer account.
	RoleClient Role = "CLIENT"
	// RoleProfessional indicates a seller account that undergoes document and subscription checks.
	RoleProfessional Role = "PROFESSIONAL"
	// RoleReseller indicates a reseller account.
	RoleReseller Role = "RESELLER"
	// RoleSousAdmin indicates a delegated administrator.
	RoleSousAdmin Role = "SOUS_ADMIN"
	// RoleAdmin indicates a full administrator.
	RoleAdmin Role = "ADMIN"
)

// roleHierarchy lists roles from lowest to highest rank.
var roleHierarchy = []Role{RoleClient, RoleProfessional, RoleReseller, RoleSousAdmin, RoleAdmin}

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is one of the known account types.
func (r Role) IsValid() bool {
	return slices.Contains(roleHierarchy, r)
}

// Rank returns the position of the role in the hierarchy, starting at 1.
// Unknown roles rank 0.
func (r Role) Rank() int {
	return slices.Index(roleHierarchy, r) + 1
}

// ParseRole converts an upstream value into a Role, case-insensitively.
// Unrecognised values yield RoleUnknown.
func ParseRole(s string) Role {
	role := Role(strings.ToUpper(strings.TrimSpace(s)))
	if !role.IsValid() {
		return RoleUnknown
	}

	return role
}

// UnmarshalJSON decodes a role through ParseRole so persisted and submitted
// sessions carry the same sanitized values as normalized logins.
// Null and non-string values decode to RoleUnknown.
func (r *Role) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*r = RoleUnknown

		return nil
	}
	*r = ParseRole(s)

	return nil
}

// HasAdminPrivileges reports whether the role is ADMIN or SOUS_ADMIN.
func HasAdminPrivileges(role Role) bool {
	return role == RoleAdmin || role == RoleSousAdmin
}

// HasMinimumRole reports whether userRole meets the bar of requiredRole.
// Either role being absent or unknown never satisfies the requirement.
func HasMinimumRole(userRole, requiredRole Role) bool {
	userRank, requiredRank := userRole.Rank(), requiredRole.Rank()
	if userRank == 0 || requiredRank == 0 {
		return false
	}

	return userRank >= requiredRank
}
