// Copyright (c) 2026 Starchive. All rights reserved.
// Author: dev@starchive.app

package schema

// UserSessionTable represents the 'sessions' table
type UserSessionTable struct {
	Table     string
	ID        string
	UserID    string
	TokenHash string
	IPAddress string
	UserAgent string
	IsRevoked string
	ExpiresAt string
	RevokedAt string
	CreatedAt string
}

// UserSession is the schema definition for sessions
var UserSession = UserSessionTable{
	Table:     "sessions",
	ID:        "id",
	UserID:    "user_id",
	TokenHash: "token_hash",
	IPAddress: "ip_address",
	UserAgent: "user_agent",
	IsRevoked: "is_revoked",
	ExpiresAt: "expires_at",
	RevokedAt: "revoked_at",
	CreatedAt: "created_at",
}

// Columns returns all standard column names
func (t UserSessionTable) Columns() []string {
	return []string{
		t.ID, t.UserID, t.TokenHash, t.IPAddress, t.UserAgent, t.IsRevoked, t.ExpiresAt, t.RevokedAt, t.CreatedAt,
	}
}
