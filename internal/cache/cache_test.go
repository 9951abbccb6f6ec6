package cache

import (
	"context"
	"testing"
	"time"

	"github.com/shopworks/storefront/internal/config"
)

var _ Pinger = (*RedisStore)(nil)

func TestNoopStore(t *testing.T) {
	store := NoopStore{}
	ctx := context.Background()

	if err := store.Set(ctx, "key", []byte("value"), time.Minute); err != nil {
		t.Fatalf("set returned error: %v", err)
	}

	value, found, err := store.Get(ctx, "key")
	if err != nil {
		t.Fatalf("get returned error: %v", err)
	}
	if found || value != nil {
		t.Fatalf("noop store must always miss, got %q", value)
	}

	if err := store.InvalidatePrefix(ctx, "key"); err != nil {
		t.Fatalf("invalidate returned error: %v", err)
	}
}

func TestNewStoreWithoutRedis(t *testing.T) {
	store, err := newStore(storeParams{
		Ctx:    context.Background(),
		Config: &config.Config{},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := store.(NoopStore); !ok {
		t.Fatalf("expected noop store without redis address, got %T", store)
	}
}
