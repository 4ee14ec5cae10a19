package studio

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileTokenStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewFileTokenStore(path)

	// A missing file is an empty session, not an error.
	tokens, err := store.Load()
	if err != nil {
		t.Fatalf("load empty: %v", err)
	}
	if tokens.AccessToken != "" || tokens.RefreshToken != "" {
		t.Errorf("tokens = %+v, want zero value", tokens)
	}

	want := Tokens{AccessToken: "access", RefreshToken: "refresh"}
	if err := store.Save(want); err != nil {
		t.Fatalf("save: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("file mode = %o, want 600", perm)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != want {
		t.Errorf("tokens = %+v, want %+v", got, want)
	}
}

func TestFileTokenStoreClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewFileTokenStore(path)

	store.Save(Tokens{AccessToken: "access"})
	if err := store.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("token file survived clear")
	}

	// Clearing twice must not fail.
	if err := store.Clear(); err != nil {
		t.Fatalf("second clear: %v", err)
	}
}
