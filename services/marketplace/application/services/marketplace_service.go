package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	pkgcache "github.com/psecuresystem/NFT-Marketplace/pkg/cache"
	marketdomain "github.com/psecuresystem/NFT-Marketplace/services/marketplace/domain"
	"github.com/psecuresystem/NFT-Marketplace/services/marketplace/domain/custody"
	"github.com/psecuresystem/NFT-Marketplace/services/marketplace/domain/ledger"
	"github.com/psecuresystem/NFT-Marketplace/services/marketplace/domain/models"
)

// AssetRegistry is the full registry surface the application layer needs:
// the domain custody interface plus the token-administration operations the
// reference registry exposes (mint, owner lookup, approvals).
type AssetRegistry interface {
	custody.Registry
	Mint(collection uuid.UUID, tokenID uint64, owner uuid.UUID) error
	OwnerOf(collection uuid.UUID, tokenID uint64) (uuid.UUID, error)
	SetApprovalForAll(collection uuid.UUID, owner, operator uuid.UUID, approved bool)
}

// MarketplaceService orchestrates the ledger and its collaborators.
// Event publishing is handled inside the ledger via its Recorder.
// Item reads are served from the Redis read model when available.
type MarketplaceService struct {
	ledger   *ledger.Ledger
	registry AssetRegistry
	cache    *pkgcache.ListingCache
}

// NewMarketplaceService returns a service wired with the given ledger,
// registry and cache. The cache may be nil; reads then always hit the ledger.
func NewMarketplaceService(led *ledger.Ledger, registry AssetRegistry, listingCache *pkgcache.ListingCache) *MarketplaceService {
	return &MarketplaceService{ledger: led, registry: registry, cache: listingCache}
}

// ListItem checks the seller's approval with the asset registry and then
// records the listing. The ledger itself does not re-check authorization;
// the escrow transfer would fail anyway, this just fails earlier and cheaper.
func (s *MarketplaceService) ListItem(ctx context.Context, collection uuid.UUID, tokenID uint64, price models.Amount, seller uuid.UUID) (models.Item, error) {
	ok, err := s.registry.IsAuthorized(ctx, collection, seller, s.ledger.Account())
	if err != nil {
		return models.Item{}, fmt.Errorf("check approval: %w", err)
	}
	if !ok {
		return models.Item{}, fmt.Errorf("%w: marketplace not approved by seller", marketdomain.ErrCustodyTransferFailed)
	}
	return s.ledger.ListItem(ctx, collection, tokenID, price, seller)
}

// Purchase settles a sale through the ledger.
func (s *MarketplaceService) Purchase(ctx context.Context, itemID uint64, paid models.Amount, buyer uuid.UUID) (models.Item, error) {
	item, err := s.ledger.PurchaseItem(ctx, itemID, paid, buyer)
	if err != nil {
		return models.Item{}, err
	}
	if s.cache != nil {
		// Best-effort: the worker also flips the flag from the Bought event.
		_ = s.cache.MarkSold(context.WithoutCancel(ctx), itemID)
	}
	return item, nil
}

// Quote returns the buyer-facing total for an item, served from the read
// model when cached.
func (s *MarketplaceService) Quote(ctx context.Context, itemID uint64) (models.Amount, error) {
	if s.cache != nil {
		// Any cache error, redis.Nil included, falls through to the ledger.
		if cached, err := s.cache.Get(ctx, itemID); err == nil {
			return models.Amount(cached.Quote), nil
		}
	}
	return s.ledger.Quote(itemID)
}

// GetItem retrieves an item using a read-through cache pattern:
//  1. Check the Redis read model first.
//  2. On cache miss (or cache error), read the ledger.
//  3. Asynchronously warm the cache with the ledger's answer.
func (s *MarketplaceService) GetItem(ctx context.Context, itemID uint64) (models.Item, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, itemID); err == nil {
			price, perr := models.NewPrice(models.Amount(cached.Price))
			if perr == nil {
				return models.Item{
					ID:         cached.ItemID,
					Collection: cached.Collection,
					TokenID:    cached.TokenID,
					Price:      price,
					Seller:     cached.Seller,
					Sold:       cached.Sold,
					ListedAt:   cached.ListedAt,
				}, nil
			}
		}
	}

	item, err := s.ledger.Item(itemID)
	if err != nil {
		return models.Item{}, err
	}

	if s.cache != nil {
		quote := item.Price.Total(s.ledger.FeePercent())
		go func() {
			_ = s.cache.Set(context.Background(), &pkgcache.CachedListing{
				ItemID:     item.ID,
				Collection: item.Collection,
				TokenID:    item.TokenID,
				Price:      uint64(item.Price.Amount()),
				Quote:      uint64(quote),
				Seller:     item.Seller,
				Sold:       item.Sold,
				ListedAt:   item.ListedAt,
			})
		}()
	}

	return item, nil
}

// ListItems returns a snapshot of the whole item table in listing order.
func (s *MarketplaceService) ListItems(context.Context) []models.Item {
	return s.ledger.Items()
}

// MintToken assigns initial custody of a token via the reference registry.
func (s *MarketplaceService) MintToken(_ context.Context, collection uuid.UUID, tokenID uint64, owner uuid.UUID) error {
	return s.registry.Mint(collection, tokenID, owner)
}

// ApproveMarketplace grants or revokes the marketplace's right to escrow
// the owner's tokens in a collection.
func (s *MarketplaceService) ApproveMarketplace(_ context.Context, collection uuid.UUID, owner uuid.UUID, approved bool) {
	s.registry.SetApprovalForAll(collection, owner, s.ledger.Account(), approved)
}

// OwnerOf reports the current custodian of a token.
func (s *MarketplaceService) OwnerOf(_ context.Context, collection uuid.UUID, tokenID uint64) (uuid.UUID, error) {
	return s.registry.OwnerOf(collection, tokenID)
}

// FeePercent exposes the ledger's immutable fee rate for API responses.
func (s *MarketplaceService) FeePercent() uint64 {
	return s.ledger.FeePercent()
}
