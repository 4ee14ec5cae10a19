package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Booking payment statuses.
const (
	PaymentPending = "pending"
	PaymentPartial = "partial"
	PaymentPaid    = "paid"
)

// Booking is one client-submitted event request plus its administrative
// follow-up fields (payment tracking, gallery links).
type Booking struct {
	ID                 uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ClientName         string         `gorm:"not null;size:255" json:"client_name"`
	ClientEmail        string         `gorm:"not null;size:255;index" json:"client_email"`
	ClientPhone        string         `gorm:"not null;size:50" json:"client_phone"`
	EventType          string         `gorm:"not null;size:100" json:"event_type"`
	SessionTitle       string         `gorm:"size:255" json:"session_title"`
	EventDate          time.Time      `gorm:"type:date;not null;index" json:"event_date"`
	EventTime          string         `gorm:"size:10" json:"event_time"`
	Location           *string        `gorm:"size:255" json:"location"`
	HoursBooked        float64        `gorm:"not null;default:1" json:"hours_booked"`
	BaseRate           float64        `gorm:"not null" json:"base_rate"`
	TotalAmount        *float64       `json:"total_amount"`
	AmountPaid         float64        `gorm:"not null;default:0" json:"amount_paid"`
	PaymentStatus      string         `gorm:"size:20;not null;default:'pending'" json:"payment_status"`
	Slug               *string        `gorm:"size:255" json:"slug"`
	PreviewGalleryURL  *string        `gorm:"size:500" json:"preview_gallery_url"`
	DownloadGalleryURL *string        `gorm:"size:500" json:"download_gallery_url"`
	Notes              *string        `gorm:"type:text" json:"notes"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`
}

// Total returns the stored total when present, otherwise the derived
// base rate times hours booked.
func (b *Booking) Total() float64 {
	if b.TotalAmount != nil {
		return *b.TotalAmount
	}
	return b.BaseRate * b.HoursBooked
}

func ValidPaymentStatus(status string) bool {
	switch status {
	case PaymentPending, PaymentPartial, PaymentPaid:
		return true
	}
	return false
}
