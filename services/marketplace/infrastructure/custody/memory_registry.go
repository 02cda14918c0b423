// Package custody provides an in-memory asset registry implementing the
// domain custody.Registry interface. It mirrors the token-contract surface
// the marketplace relies on (mint, owner lookup, operator approvals) and is
// the reference registry for local runs and tests; a real token backend
// plugs in behind the same interface.
package custody

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

type token struct {
	collection uuid.UUID
	id         uint64
}

// MemoryRegistry tracks token custody and operator approvals in memory.
// All methods are safe for concurrent use.
type MemoryRegistry struct {
	mu        sync.RWMutex
	owners    map[token]uuid.UUID
	approvals map[uuid.UUID]map[uuid.UUID]map[uuid.UUID]bool // collection → owner → operator
}

// NewMemoryRegistry returns an empty registry.
func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{
		owners:    make(map[token]uuid.UUID),
		approvals: make(map[uuid.UUID]map[uuid.UUID]map[uuid.UUID]bool),
	}
}

// Mint assigns initial custody of a token to owner. Fails if the token
// already exists.
func (r *MemoryRegistry) Mint(collection uuid.UUID, tokenID uint64, owner uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := token{collection, tokenID}
	if _, ok := r.owners[key]; ok {
		return fmt.Errorf("token %d already minted in collection %s", tokenID, collection)
	}
	r.owners[key] = owner
	return nil
}

// OwnerOf returns the current custodian of a token.
func (r *MemoryRegistry) OwnerOf(collection uuid.UUID, tokenID uint64) (uuid.UUID, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	owner, ok := r.owners[token{collection, tokenID}]
	if !ok {
		return uuid.Nil, fmt.Errorf("token %d not minted in collection %s", tokenID, collection)
	}
	return owner, nil
}

// SetApprovalForAll grants or revokes operator's right to move all of
// owner's tokens in the collection.
func (r *MemoryRegistry) SetApprovalForAll(collection uuid.UUID, owner, operator uuid.UUID, approved bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	byOwner, ok := r.approvals[collection]
	if !ok {
		byOwner = make(map[uuid.UUID]map[uuid.UUID]bool)
		r.approvals[collection] = byOwner
	}
	byOperator, ok := byOwner[owner]
	if !ok {
		byOperator = make(map[uuid.UUID]bool)
		byOwner[owner] = byOperator
	}
	byOperator[operator] = approved
}

// IsAuthorized reports whether operator may take custody of owner's tokens.
func (r *MemoryRegistry) IsAuthorized(_ context.Context, collection uuid.UUID, owner, operator uuid.UUID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.approvals[collection][owner][operator], nil
}

// Transfer moves custody of a token. Fails if from is not the current
// custodian; the token then stays where it was.
func (r *MemoryRegistry) Transfer(_ context.Context, collection uuid.UUID, tokenID uint64, from, to uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := token{collection, tokenID}
	owner, ok := r.owners[key]
	if !ok {
		return fmt.Errorf("token %d not minted in collection %s", tokenID, collection)
	}
	if owner != from {
		return fmt.Errorf("token %d is not held by %s", tokenID, from)
	}
	r.owners[key] = to
	return nil
}
