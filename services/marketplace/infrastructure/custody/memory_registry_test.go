package custody

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestMemoryRegistry(t *testing.T) {
	ctx := context.Background()
	collection := uuid.New()
	alice := uuid.New()
	bob := uuid.New()
	market := uuid.New()

	t.Run("mint assigns custody once", func(t *testing.T) {
		r := NewMemoryRegistry()
		if err := r.Mint(collection, 1, alice); err != nil {
			t.Fatalf("mint: %v", err)
		}
		if err := r.Mint(collection, 1, bob); err == nil {
			t.Fatal("expected error on double mint")
		}
		owner, err := r.OwnerOf(collection, 1)
		if err != nil {
			t.Fatalf("owner: %v", err)
		}
		if owner != alice {
			t.Fatalf("expected owner %v, got %v", alice, owner)
		}
	})

	t.Run("transfer requires current custody", func(t *testing.T) {
		r := NewMemoryRegistry()
		if err := r.Mint(collection, 1, alice); err != nil {
			t.Fatalf("mint: %v", err)
		}

		if err := r.Transfer(ctx, collection, 1, bob, market); err == nil {
			t.Fatal("expected error when from is not the owner")
		}
		if owner, _ := r.OwnerOf(collection, 1); owner != alice {
			t.Fatalf("custody must be unchanged, owner %v", owner)
		}

		if err := r.Transfer(ctx, collection, 1, alice, market); err != nil {
			t.Fatalf("transfer: %v", err)
		}
		if owner, _ := r.OwnerOf(collection, 1); owner != market {
			t.Fatalf("expected owner %v, got %v", market, owner)
		}
	})

	t.Run("transfer of unminted token fails", func(t *testing.T) {
		r := NewMemoryRegistry()
		if err := r.Transfer(ctx, collection, 99, alice, bob); err == nil {
			t.Fatal("expected error for unminted token")
		}
	})

	t.Run("approval is per owner and operator and revocable", func(t *testing.T) {
		r := NewMemoryRegistry()

		ok, err := r.IsAuthorized(ctx, collection, alice, market)
		if err != nil {
			t.Fatalf("authorized: %v", err)
		}
		if ok {
			t.Fatal("no approval granted yet")
		}

		r.SetApprovalForAll(collection, alice, market, true)
		if ok, _ := r.IsAuthorized(ctx, collection, alice, market); !ok {
			t.Fatal("expected approval after SetApprovalForAll")
		}
		if ok, _ := r.IsAuthorized(ctx, collection, bob, market); ok {
			t.Fatal("approval must not leak across owners")
		}

		r.SetApprovalForAll(collection, alice, market, false)
		if ok, _ := r.IsAuthorized(ctx, collection, alice, market); ok {
			t.Fatal("expected approval revoked")
		}
	})
}
