package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	appsvcs "github.com/psecuresystem/NFT-Marketplace/services/marketplace/application/services"
	marketdomain "github.com/psecuresystem/NFT-Marketplace/services/marketplace/domain"
	"github.com/psecuresystem/NFT-Marketplace/services/marketplace/domain/ledger"
	custodyinfra "github.com/psecuresystem/NFT-Marketplace/services/marketplace/infrastructure/custody"
	memorypayments "github.com/psecuresystem/NFT-Marketplace/services/marketplace/infrastructure/payments/memory"
)

func newService(t *testing.T) (*appsvcs.MarketplaceService, *custodyinfra.MemoryRegistry, *ledger.Ledger) {
	t.Helper()
	registry := custodyinfra.NewMemoryRegistry()
	led := ledger.New(1, uuid.New(), registry, memorypayments.NewSink(), nil)
	return appsvcs.NewMarketplaceService(led, registry, nil), registry, led
}

func TestListItem_RequiresApproval(t *testing.T) {
	ctx := context.Background()
	svc, registry, led := newService(t)

	collection := uuid.New()
	seller := uuid.New()
	if err := registry.Mint(collection, 1, seller); err != nil {
		t.Fatalf("mint: %v", err)
	}

	t.Run("without approval fails with ErrCustodyTransferFailed", func(t *testing.T) {
		_, err := svc.ListItem(ctx, collection, 1, 200, seller)
		if !errors.Is(err, marketdomain.ErrCustodyTransferFailed) {
			t.Fatalf("expected ErrCustodyTransferFailed, got %v", err)
		}
	})

	t.Run("with approval succeeds", func(t *testing.T) {
		registry.SetApprovalForAll(collection, seller, led.Account(), true)
		item, err := svc.ListItem(ctx, collection, 1, 200, seller)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if item.ID != 1 {
			t.Fatalf("expected id 1, got %d", item.ID)
		}
	})
}

func TestQuoteAndGetItem_NoCache(t *testing.T) {
	ctx := context.Background()
	svc, registry, led := newService(t)

	collection := uuid.New()
	seller := uuid.New()
	if err := registry.Mint(collection, 1, seller); err != nil {
		t.Fatalf("mint: %v", err)
	}
	registry.SetApprovalForAll(collection, seller, led.Account(), true)
	if _, err := svc.ListItem(ctx, collection, 1, 200, seller); err != nil {
		t.Fatalf("list: %v", err)
	}

	total, err := svc.Quote(ctx, 1)
	if err != nil {
		t.Fatalf("quote: %v", err)
	}
	if total != 202 {
		t.Fatalf("expected 202, got %d", total)
	}

	item, err := svc.GetItem(ctx, 1)
	if err != nil {
		t.Fatalf("get item: %v", err)
	}
	if item.ID != 1 || item.Sold {
		t.Fatalf("unexpected item: %+v", item)
	}

	if _, err := svc.GetItem(ctx, 9); !errors.Is(err, marketdomain.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}
