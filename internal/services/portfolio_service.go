package services

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/dhohnholt/davidhohnholt/internal/dto"
	"github.com/dhohnholt/davidhohnholt/internal/models"
)

var (
	ErrItemNotFound    = errors.New("portfolio item not found")
	ErrInvalidCategory = errors.New("category must be one of: Video, Photography, Web App, Marketing")
)

// PortfolioService owns the work-sample catalog.
type PortfolioService struct {
	db *gorm.DB
}

func NewPortfolioService(db *gorm.DB) *PortfolioService {
	return &PortfolioService{db: db}
}

// List returns all items in display order: position ascending, ties
// broken by creation time descending.
func (s *PortfolioService) List() ([]models.PortfolioItem, error) {
	var items []models.PortfolioItem
	err := s.db.
		Order("position ASC").
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

func (s *PortfolioService) Get(id uuid.UUID) (*models.PortfolioItem, error) {
	var item models.PortfolioItem
	if err := s.db.First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (s *PortfolioService) Create(input *dto.PortfolioInput) (*models.PortfolioItem, error) {
	item, err := normalizeInput(input)
	if err != nil {
		return nil, err
	}

	item.ID = uuid.New()
	if err := s.db.Create(item).Error; err != nil {
		return nil, fmt.Errorf("failed to create portfolio item: %w", err)
	}

	return item, nil
}

// Update replaces the item's fields and returns the row as stored, so
// callers cache normalized values rather than the request payload.
func (s *PortfolioService) Update(id uuid.UUID, input *dto.PortfolioInput) (*models.PortfolioItem, error) {
	existing, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	normalized, err := normalizeInput(input)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"title":             normalized.Title,
		"description":       normalized.Description,
		"category":          normalized.Category,
		"media_url":         normalized.MediaURL,
		"thumbnail_url":     normalized.ThumbnailURL,
		"embed_code":        normalized.EmbedCode,
		"gallery_embed_url": normalized.GalleryEmbedURL,
		"featured_images":   normalized.FeaturedImages,
		"position":          normalized.Position,
	}

	if err := s.db.Model(existing).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update portfolio item: %w", err)
	}

	return s.Get(id)
}

func (s *PortfolioService) Delete(id uuid.UUID) error {
	result := s.db.Delete(&models.PortfolioItem{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrItemNotFound
	}
	return nil
}

// normalizeInput validates the category invariant and fills defaults the
// same way the admin form does: missing position becomes 0 and an empty
// featured list is stored as '[]'.
func normalizeInput(input *dto.PortfolioInput) (*models.PortfolioItem, error) {
	if !models.ValidCategory(input.Category) {
		return nil, ErrInvalidCategory
	}

	position := 0
	if input.Position != nil {
		position = *input.Position
	}

	featured := input.FeaturedImages
	if featured == nil {
		featured = []string{}
	}
	featuredJSON, err := json.Marshal(featured)
	if err != nil {
		return nil, fmt.Errorf("failed to encode featured images: %w", err)
	}

	return &models.PortfolioItem{
		Title:           input.Title,
		Description:     input.Description,
		Category:        input.Category,
		MediaURL:        input.MediaURL,
		ThumbnailURL:    input.ThumbnailURL,
		EmbedCode:       input.EmbedCode,
		GalleryEmbedURL: input.GalleryEmbedURL,
		FeaturedImages:  datatypes.JSON(featuredJSON),
		Position:        position,
	}, nil
}
