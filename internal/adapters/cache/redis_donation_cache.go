package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"donation-match-service/internal/domain"
	"donation-match-service/internal/platform/obs"
	"donation-match-service/internal/ports"
)

// Cache key for the active-donation listing. A single key suffices because
// the listing is always fetched whole for a dashboard refresh.
const listingKey = "donations:active"

// RedisDonationCache is a read-through cache in front of a DonationRepository.
//
// It shields the store from dashboard refresh load. Cache failures are
// logged and degrade to the inner repository; they never fail the request.
// Computed ranking scores are never cached, only the raw listing.
type RedisDonationCache struct {
	client *redis.Client
	inner  ports.DonationRepository
	ttl    time.Duration
}

func NewRedisDonationCache(client *redis.Client, inner ports.DonationRepository, ttl time.Duration) (*RedisDonationCache, error) {
	if client == nil {
		return nil, errors.New("donation cache: redis client is nil")
	}
	if inner == nil {
		return nil, errors.New("donation cache: inner repository is nil")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("donation cache: ttl must be positive, got %v", ttl)
	}

	return &RedisDonationCache{client: client, inner: inner, ttl: ttl}, nil
}

// Return the active listing, serving from Redis when fresh.
func (c *RedisDonationCache) ListActive(ctx context.Context) (_ []*domain.Donation, err error) {
	defer obs.Time(ctx, "donations.cache.ListActive")(&err)

	raw, err := c.client.Get(ctx, listingKey).Bytes()
	if err == nil {
		var donations []*domain.Donation
		if err := json.Unmarshal(raw, &donations); err == nil {
			return donations, nil
		}
		// Corrupt entry: fall through to the store and overwrite it.
		log.Printf("donation cache: corrupt entry key=%s err=%v", listingKey, err)
	} else if !errors.Is(err, redis.Nil) {
		log.Printf("donation cache: get failed key=%s err=%v", listingKey, err)
	}

	donations, err := c.inner.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("donation cache: list from inner repository: %w", err)
	}

	encoded, err := json.Marshal(donations)
	if err != nil {
		return nil, fmt.Errorf("donation cache: encode listing: %w", err)
	}

	if err := c.client.Set(ctx, listingKey, encoded, c.ttl).Err(); err != nil {
		log.Printf("donation cache: set failed key=%s err=%v", listingKey, err)
	}

	return donations, nil
}

// Invalidate drops the cached listing (e.g., after a donation is claimed).
func (c *RedisDonationCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, listingKey).Err(); err != nil {
		return fmt.Errorf("donation cache: invalidate key=%s: %w", listingKey, err)
	}
	return nil
}
