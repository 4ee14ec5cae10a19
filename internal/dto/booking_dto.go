package dto

// CreateBookingRequest is the public intake payload posted by the booking
// form. SessionTitle and TotalAmount are derived server-side when absent.
type CreateBookingRequest struct {
	ClientName    string   `json:"client_name"`
	ClientEmail   string   `json:"client_email"`
	ClientPhone   string   `json:"client_phone"`
	EventType     string   `json:"event_type"`
	SessionTitle  string   `json:"session_title,omitempty"`
	EventDate     string   `json:"event_date"`
	EventTime     string   `json:"event_time"`
	Location      *string  `json:"location"`
	HoursBooked   float64  `json:"hours_booked"`
	BaseRate      float64  `json:"base_rate"`
	TotalAmount   *float64 `json:"total_amount"`
	PaymentStatus string   `json:"payment_status,omitempty"`
	Notes         *string  `json:"notes"`
}

// UpdateBookingRequest carries the admin-editable follow-up fields. Nil
// pointers mean "leave unchanged".
type UpdateBookingRequest struct {
	SessionTitle       *string  `json:"session_title"`
	EventDate          *string  `json:"event_date"`
	EventTime          *string  `json:"event_time"`
	Location           *string  `json:"location"`
	HoursBooked        *float64 `json:"hours_booked"`
	BaseRate           *float64 `json:"base_rate"`
	TotalAmount        *float64 `json:"total_amount"`
	AmountPaid         *float64 `json:"amount_paid"`
	PaymentStatus      *string  `json:"payment_status"`
	Slug               *string  `json:"slug"`
	PreviewGalleryURL  *string  `json:"preview_gallery_url"`
	DownloadGalleryURL *string  `json:"download_gallery_url"`
	Notes              *string  `json:"notes"`
}
