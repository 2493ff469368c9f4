package usage

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestConsumeWithinLimit(t *testing.T) {
	svc := NewService(3)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		u, err := svc.Consume(ctx, "user-1", 1)
		if err != nil {
			t.Fatalf("Consume %d: %v", i+1, err)
		}
		if u.Used != i+1 {
			t.Fatalf("expected used %d, got %d", i+1, u.Used)
		}
	}

	if _, err := svc.Consume(ctx, "user-1", 1); !errors.Is(err, ErrLimitReached) {
		t.Fatalf("expected ErrLimitReached, got %v", err)
	}
}

func TestConsumeIsPerUser(t *testing.T) {
	svc := NewService(1)
	ctx := context.Background()

	if _, err := svc.Consume(ctx, "user-a", 1); err != nil {
		t.Fatalf("user-a Consume: %v", err)
	}
	if _, err := svc.Consume(ctx, "user-b", 1); err != nil {
		t.Fatalf("user-b Consume: %v", err)
	}
	if _, err := svc.Consume(ctx, "user-a", 1); !errors.Is(err, ErrLimitReached) {
		t.Fatalf("expected ErrLimitReached for user-a, got %v", err)
	}
}

func TestExpiredWindowResetsUsage(t *testing.T) {
	svc := NewService(2)
	ctx := context.Background()

	if _, err := svc.Consume(ctx, "user-1", 2); err != nil {
		t.Fatalf("Consume: %v", err)
	}

	// Force the window into the past.
	ms := svc.store.(*memoryStore)
	ms.mu.Lock()
	u := ms.data["user-1"]
	u.ResetsAt = time.Now().UTC().Add(-time.Minute)
	ms.data["user-1"] = u
	ms.mu.Unlock()

	got, err := svc.EnsurePeriod(ctx, "user-1")
	if err != nil {
		t.Fatalf("EnsurePeriod: %v", err)
	}
	if got.Used != 0 {
		t.Fatalf("expected usage reset, got used=%d", got.Used)
	}
	if !got.ResetsAt.After(time.Now().UTC()) {
		t.Fatalf("expected fresh window")
	}
}

func TestResetClearsUsage(t *testing.T) {
	svc := NewService(5)
	ctx := context.Background()

	if _, err := svc.Consume(ctx, "user-1", 4); err != nil {
		t.Fatalf("Consume: %v", err)
	}
	u, err := svc.Reset(ctx, "user-1")
	if err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if u.Used != 0 || u.Limit != 5 {
		t.Fatalf("unexpected usage after reset: %+v", u)
	}
}
