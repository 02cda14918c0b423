// Package payments defines the payment-sink collaborator interface.
// The sink receives value on behalf of sellers, the fee account, and buyers
// (overpayment refunds); settlement beyond Credit is the sink's problem.
package payments

import (
	"context"

	"github.com/google/uuid"

	"github.com/psecuresystem/NFT-Marketplace/services/marketplace/domain/models"
)

// Sink credits value to a recipient. A Credit call that returns nil has
// fully taken effect; the ledger performs no retries.
type Sink interface {
	Credit(ctx context.Context, recipient uuid.UUID, amount models.Amount) error
}
