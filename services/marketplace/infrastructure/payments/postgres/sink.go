// Package postgres implements the payment sink as an append-only credit
// ledger in PostgreSQL. Each Credit call inserts one row; balances are the
// sum of a recipient's credits. The marketplace item table itself is never
// persisted — only value movement is.
package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/psecuresystem/NFT-Marketplace/pkg/database"
	"github.com/psecuresystem/NFT-Marketplace/services/marketplace/domain/models"
)

// Sink implements payments.Sink against the payment_credits table.
type Sink struct {
	db *database.Database
}

// NewSink returns a Sink backed by the given connection pool.
func NewSink(db *database.Database) *Sink {
	return &Sink{db: db}
}

// Credit appends one credit row for the recipient.
func (s *Sink) Credit(ctx context.Context, recipient uuid.UUID, amount models.Amount) error {
	_, err := s.db.Pool().Exec(ctx,
		`INSERT INTO payment_credits (id, recipient, amount) VALUES ($1, $2, $3)`,
		uuid.New(), recipient, int64(amount),
	)
	if err != nil {
		return fmt.Errorf("insert credit: %w", err)
	}
	return nil
}

// Balance returns the sum of all credits made to recipient.
func (s *Sink) Balance(ctx context.Context, recipient uuid.UUID) (models.Amount, error) {
	var total int64
	err := s.db.Pool().QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM payment_credits WHERE recipient = $1`,
		recipient,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("sum credits: %w", err)
	}
	return models.Amount(total), nil
}
