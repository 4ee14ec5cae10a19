package studio

// User is the authentication identity.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Profile is the application-level user record; distinct from User.
type Profile struct {
	ID        string  `json:"id"`
	FullName  *string `json:"full_name"`
	AvatarURL *string `json:"avatar_url"`
	Role      string  `json:"role"`
}

// PortfolioItem is one entry in the public work-sample catalog.
type PortfolioItem struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Category        string   `json:"category"`
	MediaURL        *string  `json:"media_url"`
	ThumbnailURL    string   `json:"thumbnail_url"`
	EmbedCode       *string  `json:"embed_code"`
	GalleryEmbedURL *string  `json:"gallery_embed_url"`
	FeaturedImages  []string `json:"featured_images"`
	Position        int      `json:"position"`
	CreatedAt       string   `json:"created_at"`
	UpdatedAt       string   `json:"updated_at"`
}

// PortfolioInput is the payload for creating or replacing an item.
type PortfolioInput struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Category        string   `json:"category"`
	MediaURL        *string  `json:"media_url"`
	ThumbnailURL    string   `json:"thumbnail_url"`
	EmbedCode       *string  `json:"embed_code,omitempty"`
	GalleryEmbedURL *string  `json:"gallery_embed_url,omitempty"`
	FeaturedImages  []string `json:"featured_images,omitempty"`
	Position        *int     `json:"position,omitempty"`
}

// Booking is one client event request plus its follow-up fields.
type Booking struct {
	ID                 string   `json:"id"`
	ClientName         string   `json:"client_name"`
	ClientEmail        string   `json:"client_email"`
	ClientPhone        string   `json:"client_phone"`
	EventType          string   `json:"event_type"`
	SessionTitle       string   `json:"session_title"`
	EventDate          string   `json:"event_date"`
	EventTime          string   `json:"event_time"`
	Location           *string  `json:"location"`
	HoursBooked        float64  `json:"hours_booked"`
	BaseRate           float64  `json:"base_rate"`
	TotalAmount        *float64 `json:"total_amount"`
	AmountPaid         float64  `json:"amount_paid"`
	PaymentStatus      string   `json:"payment_status"`
	Slug               *string  `json:"slug"`
	PreviewGalleryURL  *string  `json:"preview_gallery_url"`
	DownloadGalleryURL *string  `json:"download_gallery_url"`
	Notes              *string  `json:"notes"`
	CreatedAt          string   `json:"created_at"`
}

// Total returns the stored total when present, otherwise base rate times
// hours booked.
func (b *Booking) Total() float64 {
	if b.TotalAmount != nil {
		return *b.TotalAmount
	}
	return b.BaseRate * b.HoursBooked
}

// BookingUpdate carries the admin-editable follow-up fields; nil means
// leave unchanged.
type BookingUpdate struct {
	SessionTitle       *string  `json:"session_title,omitempty"`
	EventDate          *string  `json:"event_date,omitempty"`
	EventTime          *string  `json:"event_time,omitempty"`
	Location           *string  `json:"location,omitempty"`
	HoursBooked        *float64 `json:"hours_booked,omitempty"`
	BaseRate           *float64 `json:"base_rate,omitempty"`
	TotalAmount        *float64 `json:"total_amount,omitempty"`
	AmountPaid         *float64 `json:"amount_paid,omitempty"`
	PaymentStatus      *string  `json:"payment_status,omitempty"`
	Slug               *string  `json:"slug,omitempty"`
	PreviewGalleryURL  *string  `json:"preview_gallery_url,omitempty"`
	DownloadGalleryURL *string  `json:"download_gallery_url,omitempty"`
	Notes              *string  `json:"notes,omitempty"`
}

type authResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	User         User   `json:"user"`
}

type sessionResponse struct {
	User    User     `json:"user"`
	Profile *Profile `json:"profile"`
	IsAdmin bool     `json:"is_admin"`
}
