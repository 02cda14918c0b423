package app

import (
	"github.com/gorilla/sessions"

	"github.com/psecuresystem/NFT-Marketplace/pkg/cache"
	"github.com/psecuresystem/NFT-Marketplace/pkg/config"
	"github.com/psecuresystem/NFT-Marketplace/pkg/database"
	"github.com/psecuresystem/NFT-Marketplace/pkg/events"
	"github.com/psecuresystem/NFT-Marketplace/pkg/logger"
	"github.com/psecuresystem/NFT-Marketplace/pkg/workflows"
)

// Application holds shared infrastructure dependencies for all services.
// Pass to each service's route registration during server initialization.
//
// Logging: app.Logger is backed by a trace-aware handler — use slog's context
// methods and trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "purchase settled", "item_id", id)
//	app.Logger.ErrorContext(ctx, "custody transfer failed", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Config         *config.Config
	Db             *database.Database
	Logger         logger.Logger
	EventBus       *events.EventBus
	Redis          *cache.RedisClient
	TemporalClient *workflows.TemporalClient
	SessionStore   sessions.Store // Redis-backed session store; nil in worker process
}
