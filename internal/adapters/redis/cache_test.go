package redisad_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	redisad "resabot/internal/adapters/redis"
	"resabot/internal/domain"
)

func TestCache_SetGetDel(t *testing.T) {
	mr := miniredis.RunT(t)
	cache := redisad.New(mr.Addr(), "", 0)
	ctx := context.Background()

	ps := []domain.Property{{ID: "507f1f77bcf86cd799439011", Title: "Studio", Price: 80, Location: "Paris"}}
	if err := cache.Set(ctx, "properties:all", ps, time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}

	var got []domain.Property
	ok, err := cache.Get(ctx, "properties:all", &got)
	if err != nil || !ok {
		t.Fatalf("Get: ok=%v err=%v", ok, err)
	}
	if len(got) != 1 || got[0].Title != "Studio" {
		t.Fatalf("unexpected value: %+v", got)
	}

	if err := cache.Del(ctx, "properties:all"); err != nil {
		t.Fatalf("Del: %v", err)
	}
	ok, err = cache.Get(ctx, "properties:all", &got)
	if err != nil {
		t.Fatalf("Get after Del: %v", err)
	}
	if ok {
		t.Fatalf("expected miss after Del")
	}
}

func TestCache_TTLExpiry(t *testing.T) {
	mr := miniredis.RunT(t)
	cache := redisad.New(mr.Addr(), "", 0)
	ctx := context.Background()

	if err := cache.Set(ctx, "k", "v", time.Second); err != nil {
		t.Fatalf("Set: %v", err)
	}
	mr.FastForward(2 * time.Second)

	var s string
	ok, err := cache.Get(ctx, "k", &s)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Fatalf("expected expiry after TTL")
	}
}
