package studio

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
)

// AuthListener receives the new identity on every auth change: the
// signed-in user, or nil after sign-out.
type AuthListener func(user *User)

// SessionHolder tracks the current user, the derived profile and the
// loading flags. All state is guarded by one mutex; the derived admin
// flag is computed on demand and never cached.
type SessionHolder struct {
	c *Client

	mu             sync.Mutex
	user           *User
	profile        *Profile
	authLoading    bool
	profileLoading bool

	// epoch invalidates in-flight profile fetches: a sign-out or a new
	// sign-in bumps it, so a slow fetch started earlier cannot write a
	// profile into the newer state.
	epoch uint64

	listeners    map[int]AuthListener
	nextListener int
}

func newSessionHolder(c *Client) *SessionHolder {
	return &SessionHolder{
		c:           c,
		authLoading: true,
		listeners:   make(map[int]AuthListener),
	}
}

// Initialize restores the persisted session, if any. The auth loading
// flag clears only after this first resolution, success or failure.
// Session retrieval errors degrade to the logged-out state.
func (s *SessionHolder) Initialize(ctx context.Context) error {
	tokens, err := s.c.tokens.Load()
	if err != nil || tokens.AccessToken == "" {
		s.mu.Lock()
		s.user = nil
		s.profile = nil
		s.authLoading = false
		s.mu.Unlock()
		return nil
	}

	var resp sessionResponse
	if err := s.c.do(ctx, http.MethodGet, "/api/auth/session", nil, &resp, true); err != nil {
		slog.Warn("session restore failed, treating as logged out", "error", err)
		s.mu.Lock()
		s.user = nil
		s.profile = nil
		s.authLoading = false
		s.mu.Unlock()
		return nil
	}

	s.mu.Lock()
	s.epoch++
	epoch := s.epoch
	user := resp.User
	s.user = &user
	s.authLoading = false
	s.mu.Unlock()

	s.notify(&user)
	s.fetchProfile(ctx, epoch)
	return nil
}

// OnAuthChange registers a listener for sign-in, sign-out and restore
// events. The returned function deregisters it; holders must call it to
// avoid leaked subscriptions.
func (s *SessionHolder) OnAuthChange(fn AuthListener) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextListener
	s.nextListener++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// SignIn exchanges credentials for a session. Rejected credentials or a
// failed call return the error with user and profile left unset; success
// updates the user immediately and refetches the profile.
func (s *SessionHolder) SignIn(ctx context.Context, email, password string) error {
	var resp authResponse
	err := s.c.do(ctx, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, &resp, false)
	if err != nil {
		return err
	}

	if err := s.c.tokens.Save(Tokens{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
	}); err != nil {
		slog.Warn("failed to persist session tokens", "error", err)
	}

	s.mu.Lock()
	s.epoch++
	epoch := s.epoch
	user := resp.User
	s.user = &user
	s.profile = nil
	s.mu.Unlock()

	s.notify(&user)
	s.fetchProfile(ctx, epoch)
	return nil
}

// SignOut revokes the session remotely. On failure state is unchanged
// and the error returned; on success user and profile are cleared, and
// any profile fetch still in flight is discarded.
func (s *SessionHolder) SignOut(ctx context.Context) error {
	tokens, _ := s.c.tokens.Load()
	err := s.c.do(ctx, http.MethodPost, "/api/auth/logout", map[string]string{
		"refresh_token": tokens.RefreshToken,
	}, nil, true)
	if err != nil {
		return err
	}

	if err := s.c.tokens.Clear(); err != nil {
		slog.Warn("failed to clear persisted tokens", "error", err)
	}

	s.mu.Lock()
	s.epoch++
	s.user = nil
	s.profile = nil
	s.mu.Unlock()

	s.notify(nil)
	return nil
}

// RefetchProfile re-reads the profile row for the current user. A no-op
// with a warning when nobody is signed in.
func (s *SessionHolder) RefetchProfile(ctx context.Context) {
	s.mu.Lock()
	epoch := s.epoch
	signedIn := s.user != nil
	s.mu.Unlock()

	if !signedIn {
		slog.Warn("profile refetch requested with no user signed in")
		return
	}
	s.fetchProfile(ctx, epoch)
}

// fetchProfile reads the profile and applies it only when the session
// epoch has not moved. Fetch errors degrade to a nil profile.
func (s *SessionHolder) fetchProfile(ctx context.Context, epoch uint64) {
	s.mu.Lock()
	s.profileLoading = true
	s.mu.Unlock()

	var profile Profile
	err := s.c.do(ctx, http.MethodGet, "/api/profile", nil, &profile, true)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.profileLoading = false
	if s.epoch != epoch {
		// Signed out (or in again) while this fetch was in flight.
		return
	}
	if err != nil {
		slog.Warn("profile fetch failed", "error", err)
		s.profile = nil
		return
	}
	s.profile = &profile
}

func (s *SessionHolder) notify(user *User) {
	s.mu.Lock()
	fns := make([]AuthListener, 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(user)
	}
}

// User returns the current identity, or nil when logged out.
func (s *SessionHolder) User() *User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// Profile returns the current profile, or nil when missing.
func (s *SessionHolder) Profile() *Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

// IsAdmin is derived from the profile on every call, never cached.
func (s *SessionHolder) IsAdmin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile != nil && s.profile.Role == "admin"
}

func (s *SessionHolder) AuthLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authLoading
}

func (s *SessionHolder) ProfileLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profileLoading
}
