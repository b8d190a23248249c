package model

import "time"

// Roles assigned to users.  Admins manage the catalog, categories and
// member accounts; regular users browse and borrow.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User represents a library member.  Emails are unique case-insensitively;
// uniqueness is checked at registration time only.  Passwords are stored
// as bcrypt hashes, never in plain text.
//
// Fields:
//  ID           – opaque identifier of the user.
//  Email        – unique email address, stored lower-cased.
//  Name         – display name.
//  Role         – either RoleAdmin or RoleUser.
//  PasswordHash – bcrypt hash of the password.
//  CreatedAt    – creation timestamp (UTC).
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	PasswordHash string    `json:"passwordHash,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// RefreshToken records a long-lived session token for a user.  Only the
// SHA-256 hash of the raw token is persisted.
//
// Fields:
//  UserID    – owner of the token.
//  TokenHash – SHA-256 hex digest of the raw token value.
//  ExpiresAt – expiration timestamp of the token.
//  RevokedAt – when the token was revoked (nil while active).
//  CreatedAt – creation timestamp.
type RefreshToken struct {
	UserID    string     `json:"userId"`
	TokenHash string     `json:"tokenHash"`
	ExpiresAt time.Time  `json:"expiresAt"`
	RevokedAt *time.Time `json:"revokedAt,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}
