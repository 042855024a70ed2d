// ABOUTME: Tests for the SQLite-backed cache
// ABOUTME: Each test gets its own database file in a temp directory

package sqlite

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()

	c, err := NewClient(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func TestClient_SetAndGet(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	if err := c.Set(ctx, "key", []byte("value"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !bytes.Equal(got, []byte("value")) {
		t.Errorf("Get = %q, want value", got)
	}
}

func TestClient_GetMissingKey(t *testing.T) {
	c := newTestClient(t)

	_, err := c.Get(context.Background(), "missing")

	if !errors.Is(err, ErrCacheMiss) {
		t.Errorf("Get error = %v, want ErrCacheMiss", err)
	}
}

func TestClient_ExpiredEntryIsMiss(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	// Write an already-expired row directly; expiry is enforced at read
	// time, not by the background sweep.
	if _, err := c.db.Exec(
		"INSERT INTO research_cache (key, value, expiry) VALUES (?, ?, ?)",
		"key", []byte("value"), time.Now().Add(-time.Minute).Unix(),
	); err != nil {
		t.Fatalf("insert: %v", err)
	}

	_, err := c.Get(ctx, "key")
	if !errors.Is(err, ErrCacheMiss) {
		t.Errorf("Get = %v, want ErrCacheMiss for expired row", err)
	}
}

func TestClient_ZeroTTLNeverExpires(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	if err := c.Set(ctx, "key", []byte("value"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}

	if _, err := c.Get(ctx, "key"); err != nil {
		t.Errorf("Get = %v, want entry without expiry", err)
	}
}

func TestClient_SetOverwritesExisting(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	if err := c.Set(ctx, "key", []byte("old"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := c.Set(ctx, "key", []byte("new"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !bytes.Equal(got, []byte("new")) {
		t.Errorf("Get = %q, want new", got)
	}
}

func TestClient_Delete(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	if err := c.Set(ctx, "key", []byte("value"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if _, err := c.Get(ctx, "key"); !errors.Is(err, ErrCacheMiss) {
		t.Errorf("Get after delete = %v, want ErrCacheMiss", err)
	}
}

func TestClient_EmptyKeyRejected(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	if _, err := c.Get(ctx, ""); err == nil {
		t.Error("Get accepted empty key")
	}
	if err := c.Set(ctx, "", []byte("v"), time.Minute); err == nil {
		t.Error("Set accepted empty key")
	}
	if err := c.Delete(ctx, ""); err == nil {
		t.Error("Delete accepted empty key")
	}
}

func TestClient_EmptyValueRejected(t *testing.T) {
	c := newTestClient(t)

	if err := c.Set(context.Background(), "key", nil, time.Minute); err == nil {
		t.Error("Set accepted empty value")
	}
}

func TestClient_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")
	ctx := context.Background()

	first, err := NewClient(path)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if err := first.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Fatalf("Set: %v", err)
	}
	first.Close()

	second, err := NewClient(path)
	if err != nil {
		t.Fatalf("NewClient (reopen): %v", err)
	}
	defer second.Close()

	got, err := second.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get after reopen: %v", err)
	}
	if !bytes.Equal(got, []byte("value")) {
		t.Errorf("Get = %q, want value", got)
	}
}
