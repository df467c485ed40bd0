package model

import "time"

// User represents an application user record as stored in the `users`
// table.  The password hash is never serialized into API responses.
type User struct {
	ID            uint64    `json:"id"`
	Username      string    `json:"username"`
	PasswordHash  string    `json:"-"`
	PermissionsID uint64    `json:"permissions_id"`
	RoleID        RoleID    `json:"role_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Permission represents a row in the `permissions` table.  Each users row
// references exactly one permissions row.
type Permission struct {
	ID        uint64 `json:"id"`
	CanCreate bool   `json:"can_create"`
	CanDelete bool   `json:"can_delete"`
	CanEdit   bool   `json:"can_edit"`
}

// Session models an entry in the `sessions` table.  The token is the opaque
// value held by the client cookie; only the user id is stored alongside it,
// so the full user record is re-read on every request.
type Session struct {
	Token     string    `json:"-"`
	UserID    uint64    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}
