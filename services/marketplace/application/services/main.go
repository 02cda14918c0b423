package services

import (
	"github.com/psecuresystem/NFT-Marketplace/pkg/app"
	"github.com/psecuresystem/NFT-Marketplace/pkg/cache"
	"github.com/psecuresystem/NFT-Marketplace/services/marketplace/domain/ledger"
	custodyinfra "github.com/psecuresystem/NFT-Marketplace/services/marketplace/infrastructure/custody"
	eventsinfra "github.com/psecuresystem/NFT-Marketplace/services/marketplace/infrastructure/events"
	pgpayments "github.com/psecuresystem/NFT-Marketplace/services/marketplace/infrastructure/payments/postgres"
)

// Services is the application-layer service container for this bounded context.
// It wires the ledger with its infrastructure collaborators.
type Services struct {
	Marketplace *MarketplaceService
}

// New wires the marketplace ledger with the reference in-memory asset
// registry, the Postgres payment sink, the event-bus recorder, and the
// Redis read-model cache.
func New(a *app.Application) *Services {
	registry := custodyinfra.NewMemoryRegistry()
	sink := pgpayments.NewSink(a.Db)
	recorder := eventsinfra.NewBusRecorder(a.EventBus, a.Logger)
	led := ledger.New(a.Config.FeePercent, a.Config.FeeAccountID(), registry, sink, recorder)
	listingCache := cache.NewListingCache(a.Redis)
	return &Services{
		Marketplace: NewMarketplaceService(led, registry, listingCache),
	}
}
