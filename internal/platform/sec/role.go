// Copyright (c) 2026 Starchive. All rights reserved.
// Author: dev@starchive.app

package sec

// # User Roles

// UserRole represents the authorization level granted to an account.
type UserRole string

const (
	// Unrestricted system access, may mutate catalogue entries
	RoleAdmin UserRole = "admin"

	// Can curate image galleries and review submitted corrections
	RoleCurator UserRole = "curator"

	// Default role for standard registered users, read-only access
	RoleMember UserRole = "member"
)

// # Role Hierarchy

// AtLeast checks if the current role meets or exceeds the required target role.
func (r UserRole) AtLeast(target UserRole) bool {
	return r.level() >= target.level()
}

// level maps a role to a numeric hierarchy level for comparison logic.
func (r UserRole) level() int {

	// Linear scale (10-30) allows for future intermediate roles
	switch r {
	case RoleAdmin:
		return 30
	case RoleCurator:
		return 20
	case RoleMember:
		return 10
	default:
		return 0
	}
}
