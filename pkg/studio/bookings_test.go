package studio

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

type bookingBackend struct {
	mux        *http.ServeMux
	bookings   []Booking
	failDelete bool
	failUpdate bool
}

func newBookingBackend() *bookingBackend {
	paid := "paid"
	b := &bookingBackend{
		mux: http.NewServeMux(),
		bookings: []Booking{
			{ID: "bk-2", ClientName: "Maria", EventType: "Quinceañera", EventDate: "2026-10-03", PaymentStatus: "pending"},
			{ID: "bk-1", ClientName: "Jordan", EventType: "Wedding", EventDate: "2026-09-12", PaymentStatus: paid},
		},
	}

	b.mux.HandleFunc("GET /api/admin/bookings", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"bookings": b.bookings})
	})

	b.mux.HandleFunc("PUT /api/admin/bookings/{id}", func(w http.ResponseWriter, r *http.Request) {
		if b.failUpdate {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]interface{}{"error": true, "message": "Failed to update booking"})
			return
		}
		var fields BookingUpdate
		json.NewDecoder(r.Body).Decode(&fields)
		for _, booking := range b.bookings {
			if booking.ID == r.PathValue("id") {
				if fields.PaymentStatus != nil {
					booking.PaymentStatus = *fields.PaymentStatus
				}
				if fields.AmountPaid != nil {
					booking.AmountPaid = *fields.AmountPaid
				}
				json.NewEncoder(w).Encode(booking)
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]interface{}{"error": true, "message": "booking not found"})
	})

	b.mux.HandleFunc("DELETE /api/admin/bookings/{id}", func(w http.ResponseWriter, r *http.Request) {
		if b.failDelete {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]interface{}{"error": true, "message": "Failed to delete booking"})
			return
		}
		json.NewEncoder(w).Encode(map[string]bool{"success": true})
	})

	return b
}

func newBookingClient(t *testing.T, b *bookingBackend) *BookingStore {
	t.Helper()
	srv := httptest.NewServer(b.mux)
	t.Cleanup(srv.Close)

	c, err := New(srv.URL, "public-key")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c.Bookings()
}

func TestBookingRefreshKeepsServerOrder(t *testing.T) {
	store := newBookingClient(t, newBookingBackend())

	if err := store.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	bookings := store.Bookings()
	if len(bookings) != 2 {
		t.Fatalf("got %d bookings, want 2", len(bookings))
	}
	// The server returns newest event first; the cache must not reorder.
	if bookings[0].ID != "bk-2" || bookings[1].ID != "bk-1" {
		t.Errorf("order = [%s, %s]", bookings[0].ID, bookings[1].ID)
	}
}

func TestBookingUpdateReplacesCachedEntry(t *testing.T) {
	store := newBookingClient(t, newBookingBackend())
	store.Refresh(context.Background())

	paid := "paid"
	amount := 350.0
	updated, err := store.Update(context.Background(), "bk-2", &BookingUpdate{
		PaymentStatus: &paid,
		AmountPaid:    &amount,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.PaymentStatus != "paid" || updated.AmountPaid != 350.0 {
		t.Fatalf("updated = %+v", updated)
	}

	bookings := store.Bookings()
	if len(bookings) != 2 {
		t.Fatalf("cache length changed: %d", len(bookings))
	}
	if bookings[0].ID != "bk-2" || bookings[0].PaymentStatus != "paid" {
		t.Errorf("cached entry = %+v", bookings[0])
	}
	if bookings[1].PaymentStatus != "paid" {
		// bk-1 was already paid in the fixture; this guards the neighbor.
		t.Errorf("neighbor changed: %+v", bookings[1])
	}
}

func TestBookingUpdateFailureLeavesCacheUnchanged(t *testing.T) {
	b := newBookingBackend()
	b.failUpdate = true
	store := newBookingClient(t, b)
	store.Refresh(context.Background())

	paid := "paid"
	if _, err := store.Update(context.Background(), "bk-2", &BookingUpdate{PaymentStatus: &paid}); err == nil {
		t.Fatal("expected update error")
	}

	bookings := store.Bookings()
	if bookings[0].PaymentStatus != "pending" {
		t.Errorf("cache changed after failed update: %+v", bookings[0])
	}
}

func TestBookingDeleteFailureLeavesCacheUnchanged(t *testing.T) {
	b := newBookingBackend()
	b.failDelete = true
	store := newBookingClient(t, b)
	store.Refresh(context.Background())

	before := store.Bookings()
	if err := store.Delete(context.Background(), "bk-1"); err == nil {
		t.Fatal("expected delete error")
	}

	after := store.Bookings()
	if len(after) != len(before) {
		t.Fatalf("cache length changed: %d -> %d", len(before), len(after))
	}
	for i := range before {
		if after[i].ID != before[i].ID {
			t.Errorf("cache order changed at %d: %q -> %q", i, before[i].ID, after[i].ID)
		}
	}
}

func TestBookingDeleteRemovesFromCache(t *testing.T) {
	store := newBookingClient(t, newBookingBackend())
	store.Refresh(context.Background())

	if err := store.Delete(context.Background(), "bk-2"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	bookings := store.Bookings()
	if len(bookings) != 1 || bookings[0].ID != "bk-1" {
		t.Errorf("cache = %+v", bookings)
	}
}
