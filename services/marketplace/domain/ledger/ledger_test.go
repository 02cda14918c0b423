package ledger_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"

	marketdomain "github.com/psecuresystem/NFT-Marketplace/services/marketplace/domain"
	domainevents "github.com/psecuresystem/NFT-Marketplace/services/marketplace/domain/events"
	"github.com/psecuresystem/NFT-Marketplace/services/marketplace/domain/ledger"
	"github.com/psecuresystem/NFT-Marketplace/services/marketplace/domain/models"
)

// fakeRegistry tracks token custody in a map and can be told to refuse
// transfers.
type fakeRegistry struct {
	mu     sync.Mutex
	owners map[string]uuid.UUID
	fail   bool
}

func newFakeRegistry() *fakeRegistry {
	return &fakeRegistry{owners: make(map[string]uuid.UUID)}
}

func tokenKey(collection uuid.UUID, tokenID uint64) string {
	return fmt.Sprintf("%s/%d", collection, tokenID)
}

func (r *fakeRegistry) mint(collection uuid.UUID, tokenID uint64, owner uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.owners[tokenKey(collection, tokenID)] = owner
}

func (r *fakeRegistry) ownerOf(collection uuid.UUID, tokenID uint64) uuid.UUID {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.owners[tokenKey(collection, tokenID)]
}

func (r *fakeRegistry) Transfer(_ context.Context, collection uuid.UUID, tokenID uint64, from, to uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return errors.New("registry refused")
	}
	key := tokenKey(collection, tokenID)
	if r.owners[key] != from {
		return errors.New("not the owner")
	}
	r.owners[key] = to
	return nil
}

func (r *fakeRegistry) IsAuthorized(context.Context, uuid.UUID, uuid.UUID, uuid.UUID) (bool, error) {
	return true, nil
}

// fakeSink accumulates credited balances per recipient.
type fakeSink struct {
	mu       sync.Mutex
	balances map[uuid.UUID]models.Amount
	credits  int
}

func newFakeSink() *fakeSink {
	return &fakeSink{balances: make(map[uuid.UUID]models.Amount)}
}

func (s *fakeSink) Credit(_ context.Context, recipient uuid.UUID, amount models.Amount) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.balances[recipient] += amount
	s.credits++
	return nil
}

func (s *fakeSink) balance(id uuid.UUID) models.Amount {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.balances[id]
}

// recordingObserver appends every event to an in-memory log.
type recordingObserver struct {
	mu      sync.Mutex
	offered []domainevents.ItemOfferedEvent
	bought  []domainevents.ItemBoughtEvent
}

func (o *recordingObserver) RecordOffered(_ context.Context, evt domainevents.ItemOfferedEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.offered = append(o.offered, evt)
}

func (o *recordingObserver) RecordBought(_ context.Context, evt domainevents.ItemBoughtEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.bought = append(o.bought, evt)
}

type harness struct {
	ledger   *ledger.Ledger
	registry *fakeRegistry
	sink     *fakeSink
	obs      *recordingObserver
	fee      uuid.UUID
}

func newHarness(feePercent uint64) *harness {
	registry := newFakeRegistry()
	sink := newFakeSink()
	obs := &recordingObserver{}
	fee := uuid.New()
	return &harness{
		ledger:   ledger.New(feePercent, fee, registry, sink, obs),
		registry: registry,
		sink:     sink,
		obs:      obs,
		fee:      fee,
	}
}

func TestListItem(t *testing.T) {
	ctx := context.Background()
	collection := uuid.New()
	seller := uuid.New()

	t.Run("records item, escrows token and emits offered event", func(t *testing.T) {
		h := newHarness(1)
		h.registry.mint(collection, 7, seller)

		item, err := h.ledger.ListItem(ctx, collection, 7, 1000, seller)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.ID != 1 {
			t.Fatalf("expected item id 1, got %d", item.ID)
		}
		if item.Sold {
			t.Fatal("new item must not be sold")
		}
		if item.Collection != collection || item.TokenID != 7 || item.Seller != seller {
			t.Fatalf("item fields changed: %+v", item)
		}
		if item.Price.Amount() != 1000 {
			t.Fatalf("expected price 1000, got %d", item.Price.Amount())
		}
		if got := h.registry.ownerOf(collection, 7); got != h.ledger.Account() {
			t.Fatalf("token not escrowed with ledger, owner %v", got)
		}
		if len(h.obs.offered) != 1 {
			t.Fatalf("expected 1 offered event, got %d", len(h.obs.offered))
		}
		evt := h.obs.offered[0]
		if evt.ItemID != 1 || evt.Price != 1000 || evt.Seller != seller || evt.TokenID != 7 {
			t.Fatalf("offered event fields wrong: %+v", evt)
		}
	})

	t.Run("zero price fails with ErrInvalidPrice before escrow", func(t *testing.T) {
		h := newHarness(1)
		h.registry.mint(collection, 7, seller)

		_, err := h.ledger.ListItem(ctx, collection, 7, 0, seller)
		if !errors.Is(err, marketdomain.ErrInvalidPrice) {
			t.Fatalf("expected ErrInvalidPrice, got %v", err)
		}
		if h.ledger.ItemCount() != 0 {
			t.Fatal("item table must be unchanged")
		}
		if got := h.registry.ownerOf(collection, 7); got != seller {
			t.Fatalf("custody must not move, owner %v", got)
		}
		if len(h.obs.offered) != 0 {
			t.Fatal("no event must be emitted")
		}
	})

	t.Run("failed escrow records nothing", func(t *testing.T) {
		h := newHarness(1)
		// seller never minted the token

		_, err := h.ledger.ListItem(ctx, collection, 9, 500, seller)
		if !errors.Is(err, marketdomain.ErrCustodyTransferFailed) {
			t.Fatalf("expected ErrCustodyTransferFailed, got %v", err)
		}
		if h.ledger.ItemCount() != 0 {
			t.Fatal("item table must be unchanged")
		}
		if len(h.obs.offered) != 0 {
			t.Fatal("no event must be emitted")
		}
	})

	t.Run("sequential listings get ids 1..N in order", func(t *testing.T) {
		h := newHarness(1)
		const n = 5
		for i := uint64(1); i <= n; i++ {
			h.registry.mint(collection, i, seller)
			item, err := h.ledger.ListItem(ctx, collection, i, 100*models.Amount(i), seller)
			if err != nil {
				t.Fatalf("listing %d: %v", i, err)
			}
			if item.ID != i {
				t.Fatalf("expected id %d, got %d", i, item.ID)
			}
		}
		if h.ledger.ItemCount() != n {
			t.Fatalf("expected %d items, got %d", n, h.ledger.ItemCount())
		}
		items := h.ledger.Items()
		for i, item := range items {
			if item.ID != uint64(i)+1 {
				t.Fatalf("snapshot out of order at %d: id %d", i, item.ID)
			}
		}
	})
}

func TestQuote(t *testing.T) {
	ctx := context.Background()
	collection := uuid.New()
	seller := uuid.New()

	t.Run("adds the flat fee with integer floor", func(t *testing.T) {
		h := newHarness(1)
		h.registry.mint(collection, 1, seller)
		if _, err := h.ledger.ListItem(ctx, collection, 1, 200, seller); err != nil {
			t.Fatalf("list: %v", err)
		}

		total, err := h.ledger.Quote(1)
		if err != nil {
			t.Fatalf("quote: %v", err)
		}
		// 1% of 200 base units is 2: quote 202, the reference 2.0 → 2.02 case.
		if total != 202 {
			t.Fatalf("expected quote 202, got %d", total)
		}
	})

	t.Run("fee rounds down", func(t *testing.T) {
		h := newHarness(3)
		h.registry.mint(collection, 1, seller)
		if _, err := h.ledger.ListItem(ctx, collection, 1, 50, seller); err != nil {
			t.Fatalf("list: %v", err)
		}

		total, err := h.ledger.Quote(1)
		if err != nil {
			t.Fatalf("quote: %v", err)
		}
		// 3% of 50 is 1.5, floored to 1.
		if total != 51 {
			t.Fatalf("expected quote 51, got %d", total)
		}
	})

	t.Run("unknown id fails with ErrItemNotFound", func(t *testing.T) {
		h := newHarness(1)
		for _, id := range []uint64{0, 1, 42} {
			if _, err := h.ledger.Quote(id); !errors.Is(err, marketdomain.ErrItemNotFound) {
				t.Fatalf("id %d: expected ErrItemNotFound, got %v", id, err)
			}
		}
	})
}

func TestPurchaseItem(t *testing.T) {
	ctx := context.Background()
	collection := uuid.New()
	seller := uuid.New()
	buyer := uuid.New()

	list := func(t *testing.T, h *harness, tokenID uint64, price models.Amount) uint64 {
		t.Helper()
		h.registry.mint(collection, tokenID, seller)
		item, err := h.ledger.ListItem(ctx, collection, tokenID, price, seller)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		return item.ID
	}

	t.Run("pays seller and fee account, releases custody, marks sold", func(t *testing.T) {
		h := newHarness(1)
		id := list(t, h, 1, 200)

		item, err := h.ledger.PurchaseItem(ctx, id, 202, buyer)
		if err != nil {
			t.Fatalf("purchase: %v", err)
		}
		if !item.Sold {
			t.Fatal("returned item must be sold")
		}
		if got, _ := h.ledger.Item(id); !got.Sold {
			t.Fatal("stored item must be sold")
		}
		if got := h.registry.ownerOf(collection, 1); got != buyer {
			t.Fatalf("custody must be the buyer's, owner %v", got)
		}
		if got := h.sink.balance(seller); got != 200 {
			t.Fatalf("seller must receive exactly the price, got %d", got)
		}
		if got := h.sink.balance(h.fee); got != 2 {
			t.Fatalf("fee account must receive exactly the fee, got %d", got)
		}
		if len(h.obs.bought) != 1 {
			t.Fatalf("expected 1 bought event, got %d", len(h.obs.bought))
		}
		evt := h.obs.bought[0]
		if evt.ItemID != id || evt.Buyer != buyer || evt.Seller != seller || evt.Price != 200 {
			t.Fatalf("bought event fields wrong: %+v", evt)
		}
	})

	t.Run("overpayment is refunded to the buyer", func(t *testing.T) {
		h := newHarness(1)
		id := list(t, h, 1, 200)

		if _, err := h.ledger.PurchaseItem(ctx, id, 250, buyer); err != nil {
			t.Fatalf("purchase: %v", err)
		}
		if got := h.sink.balance(seller); got != 200 {
			t.Fatalf("seller overpaid: got %d", got)
		}
		if got := h.sink.balance(h.fee); got != 2 {
			t.Fatalf("fee account overpaid: got %d", got)
		}
		if got := h.sink.balance(buyer); got != 48 {
			t.Fatalf("expected refund 48, got %d", got)
		}
	})

	t.Run("second purchase always fails with ErrAlreadySold", func(t *testing.T) {
		h := newHarness(1)
		id := list(t, h, 1, 200)

		if _, err := h.ledger.PurchaseItem(ctx, id, 202, buyer); err != nil {
			t.Fatalf("first purchase: %v", err)
		}

		other := uuid.New()
		_, err := h.ledger.PurchaseItem(ctx, id, 10_000, other)
		if !errors.Is(err, marketdomain.ErrAlreadySold) {
			t.Fatalf("expected ErrAlreadySold, got %v", err)
		}
		if got := h.sink.balance(other); got != 0 {
			t.Fatalf("rejected buyer must not be credited, got %d", got)
		}
	})

	t.Run("out of range ids fail with ErrItemNotFound", func(t *testing.T) {
		h := newHarness(1)
		list(t, h, 1, 200)

		for _, id := range []uint64{0, 2, 99} {
			if _, err := h.ledger.PurchaseItem(ctx, id, 202, buyer); !errors.Is(err, marketdomain.ErrItemNotFound) {
				t.Fatalf("id %d: expected ErrItemNotFound, got %v", id, err)
			}
		}
	})

	t.Run("underpayment fails with no state change", func(t *testing.T) {
		h := newHarness(1)
		id := list(t, h, 1, 200)

		_, err := h.ledger.PurchaseItem(ctx, id, 201, buyer)
		if !errors.Is(err, marketdomain.ErrInsufficientPayment) {
			t.Fatalf("expected ErrInsufficientPayment, got %v", err)
		}
		if item, _ := h.ledger.Item(id); item.Sold {
			t.Fatal("item must remain unsold")
		}
		if h.sink.credits != 0 {
			t.Fatalf("no funds must move, saw %d credits", h.sink.credits)
		}
		if got := h.registry.ownerOf(collection, 1); got != h.ledger.Account() {
			t.Fatalf("custody must stay with the ledger, owner %v", got)
		}
		if len(h.obs.bought) != 0 {
			t.Fatal("no event must be emitted")
		}
	})

	t.Run("failed custody release aborts before any credit", func(t *testing.T) {
		h := newHarness(1)
		id := list(t, h, 1, 200)
		h.registry.fail = true

		_, err := h.ledger.PurchaseItem(ctx, id, 202, buyer)
		if !errors.Is(err, marketdomain.ErrCustodyTransferFailed) {
			t.Fatalf("expected ErrCustodyTransferFailed, got %v", err)
		}
		if item, _ := h.ledger.Item(id); item.Sold {
			t.Fatal("item must remain unsold")
		}
		if h.sink.credits != 0 {
			t.Fatalf("no funds must move, saw %d credits", h.sink.credits)
		}
	})

	t.Run("concurrent purchases of one item settle exactly once", func(t *testing.T) {
		h := newHarness(1)
		id := list(t, h, 1, 200)

		const buyers = 16
		var wg sync.WaitGroup
		results := make(chan error, buyers)
		for i := 0; i < buyers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := h.ledger.PurchaseItem(ctx, id, 202, uuid.New())
				results <- err
			}()
		}
		wg.Wait()
		close(results)

		succeeded := 0
		for err := range results {
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, marketdomain.ErrAlreadySold):
			default:
				t.Fatalf("unexpected error: %v", err)
			}
		}
		if succeeded != 1 {
			t.Fatalf("expected exactly one successful purchase, got %d", succeeded)
		}
		if got := h.sink.balance(seller); got != 200 {
			t.Fatalf("seller must be paid exactly once, got %d", got)
		}
		if got := h.sink.balance(h.fee); got != 2 {
			t.Fatalf("fee account must be paid exactly once, got %d", got)
		}
	})
}
