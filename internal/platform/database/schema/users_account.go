// Copyright (c) 2026 Starchive. All rights reserved.
// Author: dev@starchive.app

package schema

// UserAccountTable represents the 'users' table
type UserAccountTable struct {
	Table       string
	ID          string
	Username    string
	Email       string
	Password    string
	Role        string
	IsActive    string
	LastLoginAt string
	CreatedAt   string
	UpdatedAt   string
}

// UserAccount is the schema definition for users
var UserAccount = UserAccountTable{
	Table:       "users",
	ID:          "id",
	Username:    "username",
	Email:       "email",
	Password:    "password_hash",
	Role:        "role",
	IsActive:    "is_active",
	LastLoginAt: "last_login_at",
	CreatedAt:   "created_at",
	UpdatedAt:   "updated_at",
}

// Columns returns all standard column names
func (t UserAccountTable) Columns() []string {
	return []string{
		t.ID, t.Username, t.Email, t.Password, t.Role, t.IsActive,
		t.LastLoginAt, t.CreatedAt, t.UpdatedAt,
	}
}
