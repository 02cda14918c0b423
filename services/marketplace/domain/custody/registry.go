// Package custody defines the asset-registry collaborator interface.
// The marketplace never tracks token ownership itself; it asks the registry
// to move custody and trusts the registry's answer. The domain layer owns
// this interface; infrastructure (or an external token service) implements it.
package custody

import (
	"context"

	"github.com/google/uuid"
)

// Registry moves custody of tokens between identities.
type Registry interface {
	// Transfer moves custody of (collection, tokenID) from one identity to
	// another. It fails if from does not hold the token or has not authorized
	// the caller to take it; no partial state is possible.
	Transfer(ctx context.Context, collection uuid.UUID, tokenID uint64, from, to uuid.UUID) error

	// IsAuthorized reports whether operator may take custody of owner's
	// tokens in the given collection.
	IsAuthorized(ctx context.Context, collection uuid.UUID, owner, operator uuid.UUID) (bool, error)
}
