package ratelimiter

import (
	"context"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestChatLimiter(t *testing.T, perMinute int) (*ChatLimiter, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	return NewChatLimiter(rdb, PerMinute(perMinute)), mr
}

func TestAllow_NilLimiter_FailOpen(t *testing.T) {
	var limiter *ChatLimiter

	allowed, retryAfter, err := limiter.Allow(context.Background(), "u1", 1)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !allowed {
		t.Fatalf("expected allowed for nil limiter")
	}
	if retryAfter != 0 {
		t.Fatalf("expected zero retryAfter, got %v", retryAfter)
	}
}

func TestNewChatLimiter_UnboundedBucketIsNil(t *testing.T) {
	if l := NewChatLimiter(nil, PerMinute(10)); l != nil {
		t.Fatalf("expected nil limiter without redis")
	}
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis: %v", err)
	}
	defer mr.Close()
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer func() { _ = rdb.Close() }()
	if l := NewChatLimiter(rdb, PerMinute(0)); l != nil {
		t.Fatalf("expected nil limiter for unbounded bucket")
	}
}

func TestAllow_ExhaustsCapacityThenDenies(t *testing.T) {
	ctx := context.Background()
	limiter, _ := newTestChatLimiter(t, 3)

	for i := 0; i < 3; i++ {
		allowed, _, err := limiter.Allow(ctx, "u1", 1)
		if err != nil {
			t.Fatalf("call %d: unexpected error: %v", i, err)
		}
		if !allowed {
			t.Fatalf("call %d: expected allowed", i)
		}
	}

	allowed, retryAfter, err := limiter.Allow(ctx, "u1", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if allowed {
		t.Fatalf("expected denial after capacity exhausted")
	}
	if retryAfter <= 0 {
		t.Fatalf("expected positive retryAfter, got %v", retryAfter)
	}
}

func TestAllow_KeysAreIndependent(t *testing.T) {
	ctx := context.Background()
	limiter, _ := newTestChatLimiter(t, 1)

	if allowed, _, _ := limiter.Allow(ctx, "u1", 1); !allowed {
		t.Fatalf("expected first u1 call allowed")
	}
	if allowed, _, _ := limiter.Allow(ctx, "u1", 1); allowed {
		t.Fatalf("expected second u1 call denied")
	}
	if allowed, _, _ := limiter.Allow(ctx, "u2", 1); !allowed {
		t.Fatalf("expected u2 unaffected by u1 bucket")
	}
}

func TestAllow_RedisDown_FailsOpen(t *testing.T) {
	ctx := context.Background()
	limiter, mr := newTestChatLimiter(t, 5)
	mr.Close()

	allowed, _, err := limiter.Allow(ctx, "u1", 1)
	if err == nil {
		t.Fatalf("expected error from closed redis")
	}
	if !allowed {
		t.Fatalf("expected fail-open when redis is unavailable")
	}
}
