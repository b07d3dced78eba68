package credstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/reverbify/musicfn/internal/shared"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()

	db, err := shared.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	store := NewSQLiteStore(db)
	if err := store.Init(context.Background()); err != nil {
		t.Fatalf("failed to init schema: %v", err)
	}

	return store
}

func TestSQLiteStore(t *testing.T) {
	ctx := context.Background()

	t.Run("Get returns ErrNoRecord for unknown user", func(t *testing.T) {
		store := newTestSQLiteStore(t)

		_, err := store.Get(ctx, "nobody")
		if !errors.Is(err, ErrNoRecord) {
			t.Fatalf("expected ErrNoRecord, got %v", err)
		}
	})

	t.Run("Put then Get round-trips a record", func(t *testing.T) {
		store := newTestSQLiteStore(t)

		record := &Record{
			Headers: map[string]string{
				"user-agent":      "Mozilla/5.0",
				"x-goog-authuser": "0",
			},
			Cookie: "__Secure-3PAPISID=abc123",
		}

		if err := store.Put(ctx, "user-1", record); err != nil {
			t.Fatalf("failed to put record: %v", err)
		}

		got, err := store.Get(ctx, "user-1")
		if err != nil {
			t.Fatalf("failed to get record: %v", err)
		}

		if got.Headers["user-agent"] != "Mozilla/5.0" {
			t.Errorf("expected user-agent header, got %v", got.Headers)
		}
		if got.Cookie != "__Secure-3PAPISID=abc123" {
			t.Errorf("unexpected cookie: %s", got.Cookie)
		}
		if got.UpdatedAt.IsZero() {
			t.Error("expected UpdatedAt to be set")
		}
	})

	t.Run("Put replaces an existing record", func(t *testing.T) {
		store := newTestSQLiteStore(t)

		first := &Record{Headers: map[string]string{"user-agent": "old"}, Cookie: "SAPISID=old"}
		if err := store.Put(ctx, "user-1", first); err != nil {
			t.Fatalf("failed to put first record: %v", err)
		}

		second := &Record{
			Headers:   map[string]string{"user-agent": "new"},
			Cookie:    "SAPISID=new",
			UpdatedAt: time.Now().UTC().Add(time.Minute),
		}
		if err := store.Put(ctx, "user-1", second); err != nil {
			t.Fatalf("failed to replace record: %v", err)
		}

		got, err := store.Get(ctx, "user-1")
		if err != nil {
			t.Fatalf("failed to get record: %v", err)
		}
		if got.Headers["user-agent"] != "new" {
			t.Errorf("expected replaced headers, got %v", got.Headers)
		}
		if got.Cookie != "SAPISID=new" {
			t.Errorf("expected replaced cookie, got %s", got.Cookie)
		}
	})

	t.Run("records are isolated per user", func(t *testing.T) {
		store := newTestSQLiteStore(t)

		if err := store.Put(ctx, "alice", &Record{Headers: map[string]string{"k": "a"}}); err != nil {
			t.Fatalf("put alice: %v", err)
		}
		if err := store.Put(ctx, "bob", &Record{Headers: map[string]string{"k": "b"}}); err != nil {
			t.Fatalf("put bob: %v", err)
		}

		got, err := store.Get(ctx, "alice")
		if err != nil {
			t.Fatalf("get alice: %v", err)
		}
		if got.Headers["k"] != "a" {
			t.Errorf("expected alice's record, got %v", got.Headers)
		}
	})
}

func TestNewStore(t *testing.T) {
	t.Run("builds sqlite store by default", func(t *testing.T) {
		store, err := NewStore(shared.StoreConfig{Driver: "", Path: ":memory:"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		defer store.Close()

		if _, ok := store.(*SQLiteStore); !ok {
			t.Errorf("expected *SQLiteStore, got %T", store)
		}
	})

	t.Run("rejects unknown driver", func(t *testing.T) {
		_, err := NewStore(shared.StoreConfig{Driver: "etcd"})
		if !errors.Is(err, shared.ErrInvalidConfig) {
			t.Fatalf("expected ErrInvalidConfig, got %v", err)
		}
	})
}
