package cache

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Integration tests — skipped unless REDIS_URL is set.
func TestListingCacheIntegration(t *testing.T) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		t.Skip("REDIS_URL not set; skipping integration tests")
	}

	rc, err := NewRedisClient(newTestConfig(redisURL))
	if err != nil {
		t.Fatalf("redis client: %v", err)
	}
	defer rc.Close() //nolint:errcheck

	ctx := context.Background()
	c := NewListingCache(rc)

	listing := &CachedListing{
		ItemID:     981234,
		Collection: uuid.New(),
		TokenID:    7,
		Price:      200,
		Quote:      202,
		Seller:     uuid.New(),
		Sold:       false,
		ListedAt:   time.Now().UTC().Truncate(time.Millisecond),
	}
	defer c.Delete(ctx, listing.ItemID) //nolint:errcheck

	t.Run("Get_Miss", func(t *testing.T) {
		if _, err := c.Get(ctx, listing.ItemID); !errors.Is(err, redis.Nil) {
			t.Fatalf("expected redis.Nil on miss, got %v", err)
		}
	})

	t.Run("Set_Then_Get", func(t *testing.T) {
		if err := c.Set(ctx, listing); err != nil {
			t.Fatalf("set: %v", err)
		}
		got, err := c.Get(ctx, listing.ItemID)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if *got != *listing {
			t.Fatalf("cached listing changed:\n got %+v\nwant %+v", got, listing)
		}
	})

	t.Run("MarkSold", func(t *testing.T) {
		if err := c.MarkSold(ctx, listing.ItemID); err != nil {
			t.Fatalf("mark sold: %v", err)
		}
		got, err := c.Get(ctx, listing.ItemID)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if !got.Sold {
			t.Fatal("expected sold flag set")
		}
	})
}
