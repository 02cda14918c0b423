// Package memory implements the payment sink as an in-process balance map,
// for local runs and tests that do not need the Postgres credit ledger.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/psecuresystem/NFT-Marketplace/services/marketplace/domain/models"
)

// Sink accumulates credited balances per recipient. Safe for concurrent use.
type Sink struct {
	mu       sync.Mutex
	balances map[uuid.UUID]models.Amount
}

// NewSink returns an empty Sink.
func NewSink() *Sink {
	return &Sink{balances: make(map[uuid.UUID]models.Amount)}
}

// Credit adds amount to the recipient's balance. Never fails.
func (s *Sink) Credit(_ context.Context, recipient uuid.UUID, amount models.Amount) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.balances[recipient] += amount
	return nil
}

// Balance returns the total credited to recipient.
func (s *Sink) Balance(recipient uuid.UUID) models.Amount {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.balances[recipient]
}
