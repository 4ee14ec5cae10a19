package dto

// PortfolioInput is the payload for creating or replacing a catalog item.
type PortfolioInput struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Category        string   `json:"category"`
	MediaURL        *string  `json:"media_url"`
	ThumbnailURL    string   `json:"thumbnail_url"`
	EmbedCode       *string  `json:"embed_code"`
	GalleryEmbedURL *string  `json:"gallery_embed_url"`
	FeaturedImages  []string `json:"featured_images"`
	Position        *int     `json:"position"`
}
