package studio

import (
	"context"
	"net/http"
	"sync"
)

// PortfolioStore fronts the catalog endpoints and keeps a local cache in
// sync with confirmed writes, so admin views never need a full reload
// after a mutation. Concurrent edits are last-write-wins at the server;
// no conflict detection happens here.
type PortfolioStore struct {
	c *Client

	mu      sync.Mutex
	items   []PortfolioItem
	lastErr string
}

func newPortfolioStore(c *Client) *PortfolioStore {
	return &PortfolioStore{c: c}
}

// Items returns a snapshot of the cached catalog in display order.
func (s *PortfolioStore) Items() []PortfolioItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]PortfolioItem, len(s.items))
	copy(out, s.items)
	return out
}

// Err returns the message from the last failed refresh, or "".
func (s *PortfolioStore) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Refresh replaces the cache with the server's catalog (position
// ascending, creation time descending). On error the cache is cleared
// and the message recorded.
func (s *PortfolioStore) Refresh(ctx context.Context) error {
	var resp struct {
		Items []PortfolioItem `json:"items"`
	}
	err := s.c.do(ctx, http.MethodGet, "/api/portfolio", nil, &resp, false)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.items = nil
		s.lastErr = err.Error()
		return err
	}
	s.items = resp.Items
	s.lastErr = ""
	return nil
}

// Create forwards the payload; on success the stored item (with server
// normalized values) is prepended to the cache.
func (s *PortfolioStore) Create(ctx context.Context, input *PortfolioInput) (*PortfolioItem, error) {
	var created PortfolioItem
	if err := s.c.do(ctx, http.MethodPost, "/api/admin/portfolio", input, &created, true); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.items = prependEntry(s.items, created)
	s.mu.Unlock()
	return &created, nil
}

// Update replaces the matching cached entry in place with the row the
// server returned; a failure leaves the cache untouched.
func (s *PortfolioStore) Update(ctx context.Context, id string, input *PortfolioInput) (*PortfolioItem, error) {
	var updated PortfolioItem
	if err := s.c.do(ctx, http.MethodPut, "/api/admin/portfolio/"+id, input, &updated, true); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.items = replaceEntry(s.items, func(it PortfolioItem) bool { return it.ID == id }, updated)
	s.mu.Unlock()
	return &updated, nil
}

// Delete removes remotely first, then drops the cached entry.
func (s *PortfolioStore) Delete(ctx context.Context, id string) error {
	if err := s.c.do(ctx, http.MethodDelete, "/api/admin/portfolio/"+id, nil, nil, true); err != nil {
		return err
	}

	s.mu.Lock()
	s.items = removeEntry(s.items, func(it PortfolioItem) bool { return it.ID == id })
	s.mu.Unlock()
	return nil
}

// FetchByID is cache-first, falling back to a direct read. A missing id
// yields (nil, nil), not an error.
func (s *PortfolioStore) FetchByID(ctx context.Context, id string) (*PortfolioItem, error) {
	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ID == id {
			item := s.items[i]
			s.mu.Unlock()
			return &item, nil
		}
	}
	s.mu.Unlock()

	var item PortfolioItem
	if err := s.c.do(ctx, http.MethodGet, "/api/portfolio/"+id, nil, &item, false); err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}
