package domain

import "strings"

// Role represents the access tier of a user account.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleDriver   Role = "driver"
	RoleManager  Role = "manager"
)

// ParseRole normalizes a stored role value. Comparison is
// trimmed and case-insensitive; anything unrecognized keeps its
// normalized spelling and is treated as non-manager.
func ParseRole(raw string) Role {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	switch normalized {
	case string(RoleManager):
		return RoleManager
	case string(RoleDriver):
		return RoleDriver
	case string(RoleCustomer):
		return RoleCustomer
	default:
		return Role(normalized)
	}
}

// IsManager reports whether the role grants manager privileges.
func (r Role) IsManager() bool {
	return r == RoleManager
}

// UserField identifies a mutable column of the users table.
type UserField string

const (
	FieldPhoneNum      UserField = "phoneNum"
	FieldPassword      UserField = "password"
	FieldFavoriteItems UserField = "favoriteItems"
	FieldLogin         UserField = "login"
	FieldRole          UserField = "role"
)

// User is the domain model for an account in the users table.
type User struct {
	Login         string
	Password      string
	Role          Role
	PhoneNum      string
	FavoriteItems *string
}
