package events

import (
	"time"

	"github.com/google/uuid"
)

// Watermill topics for marketplace events. Consumers subscribe via
// EventBus.Subscribe(ctx, events.TopicItemOffered / TopicItemBought).
const (
	TopicItemOffered = "marketplace.item.offered"
	TopicItemBought  = "marketplace.item.bought"
)

// ItemOfferedEvent is recorded when a new item enters the ledger.
type ItemOfferedEvent struct {
	EventID    uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int       `json:"version"`  // Schema version; increment on breaking changes
	ItemID     uint64    `json:"item_id"`
	Collection uuid.UUID `json:"collection"`
	TokenID    uint64    `json:"token_id"`
	Price      uint64    `json:"price"`
	Seller     uuid.UUID `json:"seller"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ItemBoughtEvent is recorded when a purchase settles. Price is the seller's
// ask; the fee on top went to the marketplace fee account.
type ItemBoughtEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	ItemID     uint64    `json:"item_id"`
	Collection uuid.UUID `json:"collection"`
	TokenID    uint64    `json:"token_id"`
	Price      uint64    `json:"price"`
	Seller     uuid.UUID `json:"seller"`
	Buyer      uuid.UUID `json:"buyer"`
	OccurredAt time.Time `json:"occurred_at"`
}
