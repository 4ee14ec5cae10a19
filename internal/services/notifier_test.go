package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/dhohnholt/davidhohnholt/internal/config"
	"github.com/dhohnholt/davidhohnholt/internal/models"
)

func TestNotifierBookingCreated(t *testing.T) {
	received := make(chan *http.Request, 1)
	var payload bookingNotification

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		received <- r
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	n := NewNotifier(&config.Config{
		NotifyURL:     srv.URL,
		NotifyAPIKey:  "test-key",
		NotifyTimeout: 5 * time.Second,
	})
	if n == nil {
		t.Fatal("notifier not constructed despite configured URL")
	}

	booking := &models.Booking{
		ID:         uuid.New(),
		ClientName: "Maria Lopez",
		EventType:  "quince",
	}
	n.BookingCreated(booking)

	select {
	case r := <-received:
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q", got)
		}
		if got := r.Header.Get("apikey"); got != "test-key" {
			t.Errorf("apikey = %q", got)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("Content-Type = %q", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("notification never arrived")
	}

	if payload.Type != "booking.created" {
		t.Errorf("payload type = %q", payload.Type)
	}
	if payload.Booking == nil || payload.Booking.ID != booking.ID {
		t.Error("payload booking missing or wrong id")
	}
}

func TestNotifierSwallowsEndpointFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	n := NewNotifier(&config.Config{
		NotifyURL:     srv.URL,
		NotifyAPIKey:  "test-key",
		NotifyTimeout: 5 * time.Second,
	})

	// Must not panic or return anything; failure is log-only.
	n.BookingCreated(&models.Booking{ID: uuid.New()})
}

func TestNotifierDisabledWithoutURL(t *testing.T) {
	if n := NewNotifier(&config.Config{}); n != nil {
		t.Error("notifier constructed without a URL")
	}
}
