package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Portfolio categories shown on the public site.
const (
	CategoryVideo       = "Video"
	CategoryPhotography = "Photography"
	CategoryWebApp      = "Web App"
	CategoryMarketing   = "Marketing"
)

// PortfolioItem is one entry in the public work-sample catalog. Position
// defines the manual display order; ties are broken by creation time
// descending.
type PortfolioItem struct {
	ID              uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title           string         `gorm:"not null;size:255" json:"title"`
	Description     string         `gorm:"type:text" json:"description"`
	Category        string         `gorm:"not null;size:50;index" json:"category"`
	MediaURL        *string        `gorm:"size:500" json:"media_url"`
	ThumbnailURL    string         `gorm:"size:500" json:"thumbnail_url"`
	EmbedCode       *string        `gorm:"type:text" json:"embed_code"`
	GalleryEmbedURL *string        `gorm:"size:500" json:"gallery_embed_url"`
	FeaturedImages  datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"featured_images"`
	Position        int            `gorm:"not null;default:0;index" json:"position"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

func ValidCategory(category string) bool {
	switch category {
	case CategoryVideo, CategoryPhotography, CategoryWebApp, CategoryMarketing:
		return true
	}
	return false
}
