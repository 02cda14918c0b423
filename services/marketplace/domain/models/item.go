package models

import (
	"time"

	"github.com/google/uuid"
)

// Item is a listing record in the marketplace ledger. The ledger assigns IDs
// sequentially from 1 and never reuses or deletes them; Price and Seller are
// fixed at creation and only Sold ever changes, false→true, exactly once.
type Item struct {
	ID         uint64
	Collection uuid.UUID // asset collection the token belongs to
	TokenID    uint64
	Price      Price
	Seller     uuid.UUID
	Sold       bool
	ListedAt   time.Time
}

// NewItem constructs an unsold Item for the given listing. The caller (the
// ledger) supplies the sequential id.
func NewItem(id uint64, collection uuid.UUID, tokenID uint64, price Price, seller uuid.UUID) *Item {
	return &Item{
		ID:         id,
		Collection: collection,
		TokenID:    tokenID,
		Price:      price,
		Seller:     seller,
		Sold:       false,
		ListedAt:   time.Now().UTC(),
	}
}
