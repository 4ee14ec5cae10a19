package models

import (
	"time"

	"github.com/google/uuid"
)

// Profile roles. "admin" gates the dashboard and catalog mutations.
const (
	RoleAdmin  = "admin"
	RoleViewer = "viewer"
	RoleEditor = "editor"
	RoleGuest  = "guest"
	RoleClient = "client"
)

// Profile is the application-level user record, distinct from the auth
// identity. The primary key is the user id, so there is at most one
// profile per user.
type Profile struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FullName  *string   `gorm:"size:255" json:"full_name"`
	AvatarURL *string   `gorm:"size:500" json:"avatar_url"`
	Role      string    `gorm:"size:20;default:'client'" json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	User      User      `gorm:"foreignKey:ID" json:"-"`
}

func (p *Profile) IsAdmin() bool {
	return p != nil && p.Role == RoleAdmin
}

func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleViewer, RoleEditor, RoleGuest, RoleClient:
		return true
	}
	return false
}
