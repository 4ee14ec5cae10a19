package studio

import (
	"context"
	"net/http"
	"sync"
)

// BookingStore fronts the admin booking endpoints. There is no create
// here: the public booking form posts straight to the intake endpoint.
type BookingStore struct {
	c *Client

	mu       sync.Mutex
	bookings []Booking
}

func newBookingStore(c *Client) *BookingStore {
	return &BookingStore{c: c}
}

// Bookings returns a snapshot of the cache, newest event first.
func (s *BookingStore) Bookings() []Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Booking, len(s.bookings))
	copy(out, s.bookings)
	return out
}

// Refresh replaces the cache with the server's list (event date
// descending).
func (s *BookingStore) Refresh(ctx context.Context) error {
	var resp struct {
		Bookings []Booking `json:"bookings"`
	}
	if err := s.c.do(ctx, http.MethodGet, "/api/admin/bookings", nil, &resp, true); err != nil {
		return err
	}

	s.mu.Lock()
	s.bookings = resp.Bookings
	s.mu.Unlock()
	return nil
}

// Update applies follow-up fields (payment, galleries, notes); on
// success the cached entry is replaced with the stored row, on failure
// the cache is untouched.
func (s *BookingStore) Update(ctx context.Context, id string, fields *BookingUpdate) (*Booking, error) {
	var updated Booking
	if err := s.c.do(ctx, http.MethodPut, "/api/admin/bookings/"+id, fields, &updated, true); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.bookings = replaceEntry(s.bookings, func(b Booking) bool { return b.ID == id }, updated)
	s.mu.Unlock()
	return &updated, nil
}

// Delete removes remotely first, then drops the cached entry.
func (s *BookingStore) Delete(ctx context.Context, id string) error {
	if err := s.c.do(ctx, http.MethodDelete, "/api/admin/bookings/"+id, nil, nil, true); err != nil {
		return err
	}

	s.mu.Lock()
	s.bookings = removeEntry(s.bookings, func(b Booking) bool { return b.ID == id })
	s.mu.Unlock()
	return nil
}
