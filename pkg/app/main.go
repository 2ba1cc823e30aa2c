package app

import (
	"github.com/gorilla/sessions"

	"github.com/sevakart/marketplace/pkg/cache"
	"github.com/sevakart/marketplace/pkg/config"
	"github.com/sevakart/marketplace/pkg/database"
	"github.com/sevakart/marketplace/pkg/events"
	"github.com/sevakart/marketplace/pkg/logger"
	"github.com/sevakart/marketplace/pkg/workflows"
)

// Application holds shared infrastructure dependencies for all bounded contexts.
// Pass it to each context's services.New during server and worker initialization.
//
// Logging: app.Logger is backed by a trace-aware handler. Use slog's context methods
// and trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "order placed", "order_id", id)
//	app.Logger.ErrorContext(ctx, "failed to save", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Config         *config.Config
	Db             *database.Database
	Logger         logger.Logger
	EventBus       *events.EventBus
	Redis          *cache.RedisClient
	TemporalClient *workflows.TemporalClient // nil when Temporal is disabled
	SessionStore   sessions.Store            // Redis-backed session store; nil in worker process
}
