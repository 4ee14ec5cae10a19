package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dhohnholt/davidhohnholt/internal/dto"
	"github.com/dhohnholt/davidhohnholt/internal/models"
)

var (
	ErrBookingNotFound      = errors.New("booking not found")
	ErrInvalidEventDate     = errors.New("event_date must be formatted as YYYY-MM-DD")
	ErrInvalidPaymentStatus = errors.New("payment_status must be one of: pending, partial, paid")
)

const eventDateLayout = "2006-01-02"

// BookingService owns booking records. Creation comes from the public
// intake form; updates and deletes are admin-only.
type BookingService struct {
	db       *gorm.DB
	notifier *Notifier
}

func NewBookingService(db *gorm.DB, notifier *Notifier) *BookingService {
	return &BookingService{db: db, notifier: notifier}
}

// List returns all bookings, newest event first.
func (s *BookingService) List() ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.db.Order("event_date DESC").Find(&bookings).Error
	return bookings, err
}

func (s *BookingService) Get(id uuid.UUID) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.First(&booking, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

// Create stores a new intake request and fires the best-effort admin
// notification. The notification never affects the returned result.
func (s *BookingService) Create(req *dto.CreateBookingRequest) (*models.Booking, error) {
	booking, err := bookingFromRequest(req)
	if err != nil {
		return nil, err
	}

	booking.ID = uuid.New()
	if err := s.db.Create(booking).Error; err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	if s.notifier != nil {
		go s.notifier.BookingCreated(booking)
	}

	return booking, nil
}

// Update applies the admin-editable fields. Nil request fields are left
// unchanged; the stored row is re-read and returned.
func (s *BookingService) Update(id uuid.UUID, req *dto.UpdateBookingRequest) (*models.Booking, error) {
	booking, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.SessionTitle != nil {
		updates["session_title"] = *req.SessionTitle
	}
	if req.EventDate != nil {
		date, err := time.Parse(eventDateLayout, *req.EventDate)
		if err != nil {
			return nil, ErrInvalidEventDate
		}
		updates["event_date"] = date
	}
	if req.EventTime != nil {
		updates["event_time"] = *req.EventTime
	}
	if req.Location != nil {
		updates["location"] = req.Location
	}
	if req.HoursBooked != nil {
		updates["hours_booked"] = *req.HoursBooked
	}
	if req.BaseRate != nil {
		updates["base_rate"] = *req.BaseRate
	}
	if req.TotalAmount != nil {
		updates["total_amount"] = req.TotalAmount
	}
	if req.AmountPaid != nil {
		updates["amount_paid"] = *req.AmountPaid
	}
	if req.PaymentStatus != nil {
		if !models.ValidPaymentStatus(*req.PaymentStatus) {
			return nil, ErrInvalidPaymentStatus
		}
		updates["payment_status"] = *req.PaymentStatus
	}
	if req.Slug != nil {
		updates["slug"] = req.Slug
	}
	if req.PreviewGalleryURL != nil {
		updates["preview_gallery_url"] = req.PreviewGalleryURL
	}
	if req.DownloadGalleryURL != nil {
		updates["download_gallery_url"] = req.DownloadGalleryURL
	}
	if req.Notes != nil {
		updates["notes"] = req.Notes
	}

	if len(updates) > 0 {
		if err := s.db.Model(booking).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update booking: %w", err)
		}
	}

	return s.Get(id)
}

func (s *BookingService) Delete(id uuid.UUID) error {
	result := s.db.Delete(&models.Booking{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

// bookingFromRequest normalizes the intake payload: the session title is
// derived from event type and date unless supplied, the total defaults to
// base rate times hours booked, and the payment status starts pending.
func bookingFromRequest(req *dto.CreateBookingRequest) (*models.Booking, error) {
	if req.ClientName == "" || req.ClientEmail == "" || req.EventType == "" {
		return nil, errors.New("client_name, client_email and event_type are required")
	}

	date, err := time.Parse(eventDateLayout, req.EventDate)
	if err != nil {
		return nil, ErrInvalidEventDate
	}

	title := req.SessionTitle
	if title == "" {
		title = SessionTitle(req.EventType, req.EventDate)
	}

	status := req.PaymentStatus
	if status == "" {
		status = models.PaymentPending
	}
	if !models.ValidPaymentStatus(status) {
		return nil, ErrInvalidPaymentStatus
	}

	total := req.TotalAmount
	if total == nil {
		derived := req.BaseRate * req.HoursBooked
		total = &derived
	}

	return &models.Booking{
		ClientName:    req.ClientName,
		ClientEmail:   req.ClientEmail,
		ClientPhone:   req.ClientPhone,
		EventType:     req.EventType,
		SessionTitle:  title,
		EventDate:     date,
		EventTime:     req.EventTime,
		Location:      req.Location,
		HoursBooked:   req.HoursBooked,
		BaseRate:      req.BaseRate,
		TotalAmount:   total,
		PaymentStatus: status,
		Notes:         req.Notes,
	}, nil
}

// SessionTitle builds the internal label shown on the dashboard.
func SessionTitle(eventType, eventDate string) string {
	return eventType + " — " + eventDate
}
