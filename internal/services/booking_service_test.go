package services

import (
	"errors"
	"testing"

	"github.com/dhohnholt/davidhohnholt/internal/dto"
	"github.com/dhohnholt/davidhohnholt/internal/models"
)

func validCreateRequest() *dto.CreateBookingRequest {
	return &dto.CreateBookingRequest{
		ClientName:  "Maria Lopez",
		ClientEmail: "maria@example.com",
		ClientPhone: "555-0134",
		EventType:   "quince",
		EventDate:   "2026-05-01",
		EventTime:   "17:00",
		HoursBooked: 2,
		BaseRate:    200,
	}
}

func TestBookingFromRequestDerivesTotalAndStatus(t *testing.T) {
	booking, err := bookingFromRequest(validCreateRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if booking.TotalAmount == nil {
		t.Fatal("expected derived total to be stored")
	}
	if *booking.TotalAmount != 400.00 {
		t.Errorf("total = %v, want 400.00", *booking.TotalAmount)
	}
	if booking.PaymentStatus != models.PaymentPending {
		t.Errorf("payment status = %q, want %q", booking.PaymentStatus, models.PaymentPending)
	}
}

func TestBookingFromRequestKeepsExplicitTotal(t *testing.T) {
	req := validCreateRequest()
	explicit := 350.0
	req.TotalAmount = &explicit

	booking, err := bookingFromRequest(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if booking.TotalAmount == nil || *booking.TotalAmount != 350.0 {
		t.Errorf("total = %v, want explicit 350.0", booking.TotalAmount)
	}
}

func TestBookingFromRequestDerivesSessionTitle(t *testing.T) {
	booking, err := bookingFromRequest(validCreateRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := SessionTitle("quince", "2026-05-01")
	if booking.SessionTitle != want {
		t.Errorf("session title = %q, want %q", booking.SessionTitle, want)
	}

	req := validCreateRequest()
	req.SessionTitle = "Custom shoot"
	booking, err = bookingFromRequest(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if booking.SessionTitle != "Custom shoot" {
		t.Errorf("explicit session title overridden: %q", booking.SessionTitle)
	}
}

func TestBookingFromRequestRejectsBadInput(t *testing.T) {
	req := validCreateRequest()
	req.EventDate = "05/01/2026"
	if _, err := bookingFromRequest(req); !errors.Is(err, ErrInvalidEventDate) {
		t.Errorf("bad date: err = %v, want ErrInvalidEventDate", err)
	}

	req = validCreateRequest()
	req.PaymentStatus = "overdue"
	if _, err := bookingFromRequest(req); !errors.Is(err, ErrInvalidPaymentStatus) {
		t.Errorf("bad status: err = %v, want ErrInvalidPaymentStatus", err)
	}

	req = validCreateRequest()
	req.ClientEmail = ""
	if _, err := bookingFromRequest(req); err == nil {
		t.Error("missing client_email accepted")
	}
}

func TestBookingFromRequestParsesEventDate(t *testing.T) {
	booking, err := bookingFromRequest(validCreateRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := booking.EventDate.Format("2006-01-02"); got != "2026-05-01" {
		t.Errorf("event date = %q, want 2026-05-01", got)
	}
}
