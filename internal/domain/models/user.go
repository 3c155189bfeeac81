package models

import "time"

// User represents members and administrators.
//
// Document ids are strings rather than ObjectIDs: federated accounts use the
// identity provider's stable uid as the document key, and privileged admin
// sessions use a synthetic "admin_<name>" id that is never persisted in the
// normal flow.
type User struct {
	ID            string     `bson:"_id" json:"id"`
	Name          string     `bson:"name" json:"name"`
	Email         string     `bson:"email" json:"email"`
	Specialty     string     `bson:"specialty,omitempty" json:"specialty,omitempty"`
	Role          string     `bson:"role" json:"role"` // admin | member
	IsBanned      bool       `bson:"is_banned" json:"is_banned"`
	AuthMethod    string     `bson:"auth_method,omitempty" json:"auth_method,omitempty"`
	EmailVerified bool       `bson:"email_verified" json:"email_verified"`
	PhotoURL      string     `bson:"photo_url,omitempty" json:"photo_url,omitempty"`
	CreatedAt     time.Time  `bson:"created_at" json:"created_at"`
	LastLogin     *time.Time `bson:"last_login,omitempty" json:"last_login,omitempty"`
}

// Roles used throughout the app. There is no leader tier here; moderation is
// admin-only.
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)
