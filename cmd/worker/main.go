package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/psecuresystem/NFT-Marketplace/pkg/app"
	"github.com/psecuresystem/NFT-Marketplace/pkg/cache"
	"github.com/psecuresystem/NFT-Marketplace/pkg/config"
	"github.com/psecuresystem/NFT-Marketplace/pkg/events"
	"github.com/psecuresystem/NFT-Marketplace/pkg/logger"
	"github.com/psecuresystem/NFT-Marketplace/pkg/telemetry"
	marketEvents "github.com/psecuresystem/NFT-Marketplace/services/marketplace/domain/events"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	ctx := context.Background()

	otelShutdown, _, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	eventBus, err := events.NewEventBus(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	appConfig := &app.Application{
		Config:   cfg,
		Logger:   log,
		EventBus: eventBus,
		Redis:    redisClient,
	}

	if err := registerSubscribers(ctx, appConfig); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")
	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers.
	log.Info("worker stopped")
}

// registerSubscribers wires the marketplace event handlers that maintain the
// Redis listing read model.
func registerSubscribers(ctx context.Context, a *app.Application) error {
	topics := map[string]func(context.Context, *message.Message) error{
		marketEvents.TopicItemOffered: handleItemOffered(a),
		marketEvents.TopicItemBought:  handleItemBought(a),
	}

	for topic, handler := range topics {
		errCh, err := a.EventBus.Subscribe(ctx, topic, handler)
		if err != nil {
			return err
		}
		// Drain subscriber errors in background so the channel never blocks.
		go func(topic string) {
			for err := range errCh {
				a.Logger.ErrorContext(ctx, "subscriber error", "topic", topic, "error", err)
			}
		}(topic)
	}

	a.Logger.Info("event subscribers registered",
		"topics", []string{marketEvents.TopicItemOffered, marketEvents.TopicItemBought})
	return nil
}

// handleItemOffered warms the listing read model from offered events.
// Handlers must be idempotent — the EventBus retries up to 3× on failure.
func handleItemOffered(a *app.Application) func(context.Context, *message.Message) error {
	listingCache := cache.NewListingCache(a.Redis)
	feePercent := a.Config.FeePercent
	return func(ctx context.Context, msg *message.Message) error {
		var evt marketEvents.ItemOfferedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		if err := listingCache.Set(ctx, &cache.CachedListing{
			ItemID:     evt.ItemID,
			Collection: evt.Collection,
			TokenID:    evt.TokenID,
			Price:      evt.Price,
			Quote:      evt.Price + evt.Price*feePercent/100,
			Seller:     evt.Seller,
			Sold:       false,
			ListedAt:   evt.OccurredAt,
		}); err != nil {
			// Cache warming is best-effort; log but do not fail the handler.
			a.Logger.WarnContext(ctx, "cache warm failed for offered event",
				"item_id", evt.ItemID, "error", err)
		} else {
			a.Logger.InfoContext(ctx, "cache warmed", "item_id", evt.ItemID)
		}

		return nil
	}
}

// handleItemBought flips the sold flag on the cached listing.
func handleItemBought(a *app.Application) func(context.Context, *message.Message) error {
	listingCache := cache.NewListingCache(a.Redis)
	return func(ctx context.Context, msg *message.Message) error {
		var evt marketEvents.ItemBoughtEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		if err := listingCache.MarkSold(ctx, evt.ItemID); err != nil {
			a.Logger.WarnContext(ctx, "cache update failed for bought event",
				"item_id", evt.ItemID, "error", err)
		} else {
			a.Logger.InfoContext(ctx, "listing marked sold", "item_id", evt.ItemID, "buyer", evt.Buyer)
		}

		return nil
	}
}
