package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"donation-match-service/internal/domain"
)

type stubRepository struct {
	donations []*domain.Donation
	err       error
	calls     int
}

func (s *stubRepository) ListActive(ctx context.Context) ([]*domain.Donation, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.donations, nil
}

func newTestCache(t *testing.T, inner *stubRepository, ttl time.Duration) (*RedisDonationCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	c, err := NewRedisDonationCache(client, inner, ttl)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return c, mr
}

func TestRedisDonationCacheReadThrough(t *testing.T) {
	expiry := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	inner := &stubRepository{
		donations: []*domain.Donation{
			{DonationID: 1, Title: "Bread", Pickup: &domain.Coordinate{Lat: 33.4, Lon: -112.0}, ExpiresAt: &expiry},
			{DonationID: 2, Title: "Milk"},
		},
	}
	c, _ := newTestCache(t, inner, 30*time.Second)

	ctx := context.Background()

	first, err := c.ListActive(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inner.calls != 1 {
		t.Fatalf("inner calls = %d, want 1 (cache miss)", inner.calls)
	}

	second, err := c.ListActive(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inner.calls != 1 {
		t.Fatalf("inner calls = %d, want 1 (cache hit)", inner.calls)
	}

	if len(second) != len(first) {
		t.Fatalf("cached listing length %d != %d", len(second), len(first))
	}
	for i := range first {
		if first[i].DonationID != second[i].DonationID || first[i].Title != second[i].Title {
			t.Fatalf("cached record %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}

	// Nullable fields must survive the round trip.
	if second[0].Pickup == nil || second[0].ExpiresAt == nil {
		t.Fatalf("pickup/expiry lost in cache round trip: %+v", second[0])
	}
	if second[1].Pickup != nil || second[1].ExpiresAt != nil {
		t.Fatalf("nil pickup/expiry not preserved: %+v", second[1])
	}
}

func TestRedisDonationCacheExpiry(t *testing.T) {
	inner := &stubRepository{donations: []*domain.Donation{{DonationID: 1, Title: "Bread"}}}
	c, mr := newTestCache(t, inner, 10*time.Second)

	ctx := context.Background()

	if _, err := c.ListActive(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mr.FastForward(11 * time.Second)

	if _, err := c.ListActive(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inner.calls != 2 {
		t.Fatalf("inner calls = %d, want 2 after TTL expiry", inner.calls)
	}
}

func TestRedisDonationCacheInvalidate(t *testing.T) {
	inner := &stubRepository{donations: []*domain.Donation{{DonationID: 1, Title: "Bread"}}}
	c, _ := newTestCache(t, inner, time.Minute)

	ctx := context.Background()

	if _, err := c.ListActive(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.Invalidate(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := c.ListActive(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if inner.calls != 2 {
		t.Fatalf("inner calls = %d, want 2 after invalidation", inner.calls)
	}
}

func TestRedisDonationCacheInnerErrorPropagates(t *testing.T) {
	inner := &stubRepository{err: errors.New("store down")}
	c, _ := newTestCache(t, inner, time.Minute)

	if _, err := c.ListActive(context.Background()); err == nil {
		t.Fatalf("expected error from inner repository")
	}
}

func TestNewRedisDonationCacheValidation(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	inner := &stubRepository{}

	if _, err := NewRedisDonationCache(nil, inner, time.Minute); err == nil {
		t.Errorf("expected error for nil client")
	}
	if _, err := NewRedisDonationCache(client, nil, time.Minute); err == nil {
		t.Errorf("expected error for nil inner repository")
	}
	if _, err := NewRedisDonationCache(client, inner, 0); err == nil {
		t.Errorf("expected error for zero ttl")
	}
}
