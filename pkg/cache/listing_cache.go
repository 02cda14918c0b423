package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// ListingCacheTTL is the time-to-live for cached listings.
	ListingCacheTTL = 24 * time.Hour

	listingCacheKeyPrefix = "listing"
)

// CachedListing is the denormalized read model stored in Redis: the item
// fields plus the precomputed buyer-facing quote. Warmed by the worker from
// Offered/Bought events; reads never touch the ledger when the cache hits.
type CachedListing struct {
	ItemID     uint64    `json:"item_id"`
	Collection uuid.UUID `json:"collection"`
	TokenID    uint64    `json:"token_id"`
	Price      uint64    `json:"price"`
	Quote      uint64    `json:"quote"` // price + flat fee
	Seller     uuid.UUID `json:"seller"`
	Sold       bool      `json:"sold"`
	ListedAt   time.Time `json:"listed_at"`
}

// ListingCache provides structured read/write operations for listing cache
// entries. Key format: "listing:{itemID}".
type ListingCache struct {
	client *RedisClient
}

// NewListingCache creates a ListingCache backed by the given RedisClient.
func NewListingCache(r *RedisClient) *ListingCache {
	return &ListingCache{client: r}
}

// Get retrieves a cached listing by item ID.
// Returns redis.Nil error when the key does not exist or has expired.
func (c *ListingCache) Get(ctx context.Context, itemID uint64) (*CachedListing, error) {
	vals, err := c.client.Client().HGetAll(ctx, c.key(itemID)).Result()
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}
	if len(vals) == 0 {
		return nil, redis.Nil // key not found
	}

	collection, err := uuid.Parse(vals["collection"])
	if err != nil {
		return nil, fmt.Errorf("cache parse collection: %w", err)
	}
	seller, err := uuid.Parse(vals["seller"])
	if err != nil {
		return nil, fmt.Errorf("cache parse seller: %w", err)
	}
	tokenID, err := strconv.ParseUint(vals["token_id"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("cache parse token_id: %w", err)
	}
	price, err := strconv.ParseUint(vals["price"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("cache parse price: %w", err)
	}
	quote, err := strconv.ParseUint(vals["quote"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("cache parse quote: %w", err)
	}
	listedAt, err := time.Parse(time.RFC3339Nano, vals["listed_at"])
	if err != nil {
		return nil, fmt.Errorf("cache parse listed_at: %w", err)
	}

	return &CachedListing{
		ItemID:     itemID,
		Collection: collection,
		TokenID:    tokenID,
		Price:      price,
		Quote:      quote,
		Seller:     seller,
		Sold:       vals["sold"] == "1",
		ListedAt:   listedAt,
	}, nil
}

// Set writes a cached listing as a Redis hash with a 24-hour TTL.
// Uses a pipeline to set all fields and the TTL atomically.
func (c *ListingCache) Set(ctx context.Context, l *CachedListing) error {
	sold := "0"
	if l.Sold {
		sold = "1"
	}
	key := c.key(l.ItemID)
	pipe := c.client.Client().Pipeline()
	pipe.HSet(ctx, key,
		"collection", l.Collection.String(),
		"token_id", strconv.FormatUint(l.TokenID, 10),
		"price", strconv.FormatUint(l.Price, 10),
		"quote", strconv.FormatUint(l.Quote, 10),
		"seller", l.Seller.String(),
		"sold", sold,
		"listed_at", l.ListedAt.UTC().Format(time.RFC3339Nano),
	)
	pipe.Expire(ctx, key, ListingCacheTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// MarkSold flips the sold flag on an existing cache entry. A missing entry
// is not an error; the next Set will write the full record.
func (c *ListingCache) MarkSold(ctx context.Context, itemID uint64) error {
	if err := c.client.Client().HSet(ctx, c.key(itemID), "sold", "1").Err(); err != nil {
		return fmt.Errorf("cache mark sold: %w", err)
	}
	return nil
}

// Delete removes a cached listing.
func (c *ListingCache) Delete(ctx context.Context, itemID uint64) error {
	if err := c.client.Client().Del(ctx, c.key(itemID)).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

// key builds the Redis key: "listing:{itemID}"
func (c *ListingCache) key(itemID uint64) string {
	return fmt.Sprintf("%s:%d", listingCacheKeyPrefix, itemID)
}
