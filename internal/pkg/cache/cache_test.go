package cache

import (
	"context"
	"testing"
	"time"
)

func TestDisabledCacheIsNoOp(t *testing.T) {
	ctx := context.Background()
	c := Disabled()

	var dest map[string]int
	hit, err := c.Get(ctx, "some-key", &dest)
	if err != nil {
		t.Fatalf("Get on disabled cache: %v", err)
	}
	if hit {
		t.Fatal("disabled cache reported a hit")
	}

	if err = c.Set(ctx, "some-key", map[string]int{"a": 1}); err != nil {
		t.Fatalf("Set on disabled cache: %v", err)
	}
	if err = c.Close(); err != nil {
		t.Fatalf("Close on disabled cache: %v", err)
	}
}

func TestNewWithoutAddrIsDisabled(t *testing.T) {
	c, err := New(context.Background(), "", "", 0, 30*time.Second)
	if err != nil {
		t.Fatalf("New with empty addr: %v", err)
	}

	hit, err := c.Get(context.Background(), "k", &struct{}{})
	if err != nil || hit {
		t.Fatalf("cache without redis must always miss cleanly, got hit=%v err=%v", hit, err)
	}
}
