// Package ledger implements the marketplace item table and its purchase
// state machine. The table lives in memory, is append-only, and is the only
// mutable state in the bounded context; custody and value movement are
// delegated to the injected collaborators.
package ledger

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	marketdomain "github.com/psecuresystem/NFT-Marketplace/services/marketplace/domain"
	"github.com/psecuresystem/NFT-Marketplace/services/marketplace/domain/custody"
	domainevents "github.com/psecuresystem/NFT-Marketplace/services/marketplace/domain/events"
	"github.com/psecuresystem/NFT-Marketplace/services/marketplace/domain/models"
	"github.com/psecuresystem/NFT-Marketplace/services/marketplace/domain/payments"
)

// Recorder observes ledger events. Recording is decoupled from control flow:
// implementations must not block the ledger and cannot veto an operation.
type Recorder interface {
	RecordOffered(ctx context.Context, evt domainevents.ItemOfferedEvent)
	RecordBought(ctx context.Context, evt domainevents.ItemBoughtEvent)
}

// NopRecorder discards all events. Useful when no observer is wired.
type NopRecorder struct{}

func (NopRecorder) RecordOffered(context.Context, domainevents.ItemOfferedEvent) {}
func (NopRecorder) RecordBought(context.Context, domainevents.ItemBoughtEvent)   {}

// Ledger is the marketplace ledger: a sequential, append-only table of
// listed items plus immutable fee configuration. Item IDs start at 1 and
// are never reused. One mutex serializes ListItem and PurchaseItem so no
// two purchases can both succeed on one item.
type Ledger struct {
	feePercent uint64
	feeAccount uuid.UUID
	account    uuid.UUID // the ledger's own identity, holds escrowed tokens

	registry custody.Registry
	sink     payments.Sink
	rec      Recorder

	mu    sync.Mutex
	items []*models.Item
}

// New returns a Ledger charging feePercent percent of each sale price to
// feeAccount. The ledger generates its own escrow identity; tokens listed
// with it are held under that identity until sold.
//
// The sink is assumed to complete every Credit it accepts (spec'd by the
// payments.Sink contract); a failing sink surfaces as an error but the
// ledger cannot undo credits already made.
func New(feePercent uint64, feeAccount uuid.UUID, registry custody.Registry, sink payments.Sink, rec Recorder) *Ledger {
	if rec == nil {
		rec = NopRecorder{}
	}
	return &Ledger{
		feePercent: feePercent,
		feeAccount: feeAccount,
		account:    uuid.New(),
		registry:   registry,
		sink:       sink,
		rec:        rec,
	}
}

// Account returns the ledger's escrow identity.
func (l *Ledger) Account() uuid.UUID { return l.account }

// FeePercent returns the immutable fee rate in integer percent.
func (l *Ledger) FeePercent() uint64 { return l.feePercent }

// FeeAccount returns the identity receiving all fee proceeds.
func (l *Ledger) FeeAccount() uuid.UUID { return l.feeAccount }

// ListItem escrows the token with the ledger and appends a new unsold Item.
//
// The price is validated before any custody movement, so an ErrInvalidPrice
// rejection has no side effects. A failed escrow transfer yields
// ErrCustodyTransferFailed and leaves the table unchanged.
func (l *Ledger) ListItem(ctx context.Context, collection uuid.UUID, tokenID uint64, price models.Amount, seller uuid.UUID) (models.Item, error) {
	p, err := models.NewPrice(price)
	if err != nil {
		return models.Item{}, fmt.Errorf("%w: %w", marketdomain.ErrInvalidPrice, err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.registry.Transfer(ctx, collection, tokenID, seller, l.account); err != nil {
		return models.Item{}, fmt.Errorf("%w: escrow token %d: %w", marketdomain.ErrCustodyTransferFailed, tokenID, err)
	}

	item := models.NewItem(uint64(len(l.items))+1, collection, tokenID, p, seller)
	l.items = append(l.items, item)

	l.rec.RecordOffered(ctx, domainevents.ItemOfferedEvent{
		EventID:    uuid.New(),
		Version:    1,
		ItemID:     item.ID,
		Collection: item.Collection,
		TokenID:    item.TokenID,
		Price:      uint64(item.Price.Amount()),
		Seller:     item.Seller,
		OccurredAt: item.ListedAt,
	})

	return *item, nil
}

// Quote returns the buyer-facing total for the item: price plus the flat
// fee, computed with integer arithmetic (fee rounds down).
func (l *Ledger) Quote(itemID uint64) (models.Amount, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	item, err := l.at(itemID)
	if err != nil {
		return 0, err
	}
	return item.Price.Total(l.feePercent), nil
}

// PurchaseItem settles a sale. Preconditions are checked strictly in order —
// item id range, not yet sold, payment covers the quote — and the first
// failure aborts with no side effects. On success the token moves from
// escrow to the buyer, the seller is credited the ask, the fee account the
// fee, any overpayment is refunded to the buyer, and the item is marked
// sold. Re-purchasing a sold item always fails with ErrAlreadySold.
func (l *Ledger) PurchaseItem(ctx context.Context, itemID uint64, paid models.Amount, buyer uuid.UUID) (models.Item, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	item, err := l.at(itemID)
	if err != nil {
		return models.Item{}, err
	}
	if item.Sold {
		return models.Item{}, fmt.Errorf("%w: item %d", marketdomain.ErrAlreadySold, itemID)
	}

	total := item.Price.Total(l.feePercent)
	if paid < total {
		return models.Item{}, fmt.Errorf("%w: paid %d, quoted %d", marketdomain.ErrInsufficientPayment, paid, total)
	}

	// Custody moves before any value does: if the registry refuses, the
	// whole purchase aborts with no funds in flight and the item unsold.
	if err := l.registry.Transfer(ctx, item.Collection, item.TokenID, l.account, buyer); err != nil {
		return models.Item{}, fmt.Errorf("%w: release token %d: %w", marketdomain.ErrCustodyTransferFailed, item.TokenID, err)
	}

	price := item.Price.Amount()
	fee := total - price
	if err := l.sink.Credit(ctx, item.Seller, price); err != nil {
		return models.Item{}, fmt.Errorf("credit seller: %w", err)
	}
	if err := l.sink.Credit(ctx, l.feeAccount, fee); err != nil {
		return models.Item{}, fmt.Errorf("credit fee account: %w", err)
	}
	// Overpayment is refunded, never retained: only the quoted total is
	// split between seller and fee account.
	if excess := paid - total; excess > 0 {
		if err := l.sink.Credit(ctx, buyer, excess); err != nil {
			return models.Item{}, fmt.Errorf("refund buyer: %w", err)
		}
	}

	item.Sold = true

	l.rec.RecordBought(ctx, domainevents.ItemBoughtEvent{
		EventID:    uuid.New(),
		Version:    1,
		ItemID:     item.ID,
		Collection: item.Collection,
		TokenID:    item.TokenID,
		Price:      uint64(price),
		Seller:     item.Seller,
		Buyer:      buyer,
		OccurredAt: time.Now().UTC(),
	})

	return *item, nil
}

// Item returns a copy of the item at itemID. Callers never receive a
// mutable reference into the table.
func (l *Ledger) Item(itemID uint64) (models.Item, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	item, err := l.at(itemID)
	if err != nil {
		return models.Item{}, err
	}
	return *item, nil
}

// ItemCount returns the number of items ever listed.
func (l *Ledger) ItemCount() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return uint64(len(l.items))
}

// Items returns a snapshot of the whole table in listing order.
func (l *Ledger) Items() []models.Item {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]models.Item, len(l.items))
	for i, item := range l.items {
		out[i] = *item
	}
	return out
}

// at resolves an item id to its table entry. Caller must hold l.mu.
func (l *Ledger) at(itemID uint64) (*models.Item, error) {
	if itemID == 0 || itemID > uint64(len(l.items)) {
		return nil, fmt.Errorf("%w: id %d", marketdomain.ErrItemNotFound, itemID)
	}
	return l.items[itemID-1], nil
}
