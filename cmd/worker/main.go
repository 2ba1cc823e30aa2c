package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/sevakart/marketplace/pkg/app"
	"github.com/sevakart/marketplace/pkg/cache"
	"github.com/sevakart/marketplace/pkg/config"
	"github.com/sevakart/marketplace/pkg/database"
	"github.com/sevakart/marketplace/pkg/events"
	"github.com/sevakart/marketplace/pkg/logger"
	"github.com/sevakart/marketplace/pkg/telemetry"
	"github.com/sevakart/marketplace/pkg/workflows"
	cartsvcs "github.com/sevakart/marketplace/services/cart/application/services"
	catalogsvcs "github.com/sevakart/marketplace/services/catalog/application/services"
	catalogEvents "github.com/sevakart/marketplace/services/catalog/domain/events"
	inventorysvcs "github.com/sevakart/marketplace/services/inventory/application/services"
	inventoryWorkflows "github.com/sevakart/marketplace/services/inventory/application/workflows"
	inventoryEvents "github.com/sevakart/marketplace/services/inventory/domain/events"
	ordersvcs "github.com/sevakart/marketplace/services/order/application/services"
	orderEvents "github.com/sevakart/marketplace/services/order/domain/events"
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

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer pool.Close()
	log.Info("database pool connected")

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

	var temporalClient *workflows.TemporalClient
	if cfg.TemporalEnabled {
		temporalClient, err = workflows.NewTemporalClient(ctx, cfg.TemporalHostPort, cfg.TemporalNamespace, log)
		if err != nil {
			log.Error("failed to initialize temporal client", "error", err)
			os.Exit(1) //nolint:gocritic
		}
		defer temporalClient.Close()
	}

	appConfig := &app.Application{
		Config:         cfg,
		Db:             pool,
		Logger:         log,
		EventBus:       eventBus,
		Redis:          redisClient,
		TemporalClient: temporalClient,
	}

	catalog := catalogsvcs.New(appConfig)
	cart := cartsvcs.New(appConfig, catalog.Product, cfg.CartTTL)
	orders := ordersvcs.New(appConfig, catalog.Product, cart.Cart)
	inventory := inventorysvcs.New(appConfig, catalog.Product, orders.Order)

	subs := subscriptions(appConfig, catalog, orders.Feed)
	if err := registerSubscribers(ctx, appConfig, subs); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	if temporalClient != nil {
		w := temporalClient.NewWorker(cfg.TemporalTaskQueue)
		inventoryWorkflows.Register(w, &inventoryWorkflows.Activities{Inventory: inventory.Inventory})
		if err := w.Start(); err != nil {
			log.Error("failed to start temporal worker", "error", err)
			os.Exit(1) //nolint:gocritic
		}
		defer w.Stop()
		log.Info("temporal worker started", "task_queue", cfg.TemporalTaskQueue)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")
	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers.
	log.Info("worker stopped")
}

type handlerFunc = func(context.Context, *message.Message) error

// subscriptions maps every consumed topic to its handler.
// Add new topics here as more services publish events.
func subscriptions(a *app.Application, catalog *catalogsvcs.Services, feed *cache.OrderFeed) map[string]handlerFunc {
	subs := map[string]handlerFunc{
		catalogEvents.TopicProductCreated: handleProductChanged(a, catalog),
		catalogEvents.TopicProductUpdated: handleProductChanged(a, catalog),
		catalogEvents.TopicProductDeleted: handleProductDeleted(a),
		inventoryEvents.TopicStockChanged: handleStockChanged(a),
	}
	for _, topic := range orderEvents.Topics {
		subs[topic] = handleOrderEvent(a, feed)
	}
	return subs
}

// registerSubscribers wires all domain event handlers.
func registerSubscribers(ctx context.Context, a *app.Application, subs map[string]handlerFunc) error {
	topics := make([]string, 0, len(subs))
	for topic, handler := range subs {
		errCh, err := a.EventBus.Subscribe(ctx, topic, handler)
		if err != nil {
			return err
		}

		// Drain subscriber errors in background so the channel never blocks.
		go func(topic string) {
			for err := range errCh {
				a.Logger.ErrorContext(ctx, "subscriber error",
					"topic", topic,
					"error", err,
				)
			}
		}(topic)
		topics = append(topics, topic)
	}

	a.Logger.Info("event subscribers registered", "topics", topics)
	return nil
}

// handleProductChanged returns a handler for product.created and product.updated.
// Handlers must be idempotent: EventBus retries up to 3× on failure.
// Drops the cached entry and reloads it so reads after a supplier edit see the new price and stock.
func handleProductChanged(a *app.Application, catalog *catalogsvcs.Services) handlerFunc {
	productCache := cache.NewProductCache(a.Redis)
	return func(ctx context.Context, msg *message.Message) error {
		var evt catalogEvents.ProductEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}
		if err := productCache.Delete(ctx, evt.ProductID); err != nil {
			a.Logger.WarnContext(ctx, "cache invalidation failed", "product_id", evt.ProductID, "error", err)
		}
		if _, err := catalog.Product.GetByID(ctx, evt.ProductID); err != nil {
			// Deleted again before the refresh; nothing to warm.
			a.Logger.WarnContext(ctx, "cache warm failed", "product_id", evt.ProductID, "error", err)
			return nil
		}
		a.Logger.InfoContext(ctx, "product cache refreshed",
			"product_id", evt.ProductID, "supplier_id", evt.SupplierID)
		return nil
	}
}

func handleProductDeleted(a *app.Application) handlerFunc {
	productCache := cache.NewProductCache(a.Redis)
	return func(ctx context.Context, msg *message.Message) error {
		var evt catalogEvents.ProductEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}
		return productCache.Delete(ctx, evt.ProductID)
	}
}

// handleOrderEvent fans every order change out to the realtime feed of the
// vendor and each supplier on the order.
func handleOrderEvent(a *app.Application, feed *cache.OrderFeed) handlerFunc {
	return func(ctx context.Context, msg *message.Message) error {
		var evt orderEvents.OrderEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}
		if err := feed.Publish(ctx, msg.Payload, evt.Recipients()...); err != nil {
			return err
		}
		a.Logger.InfoContext(ctx, "order event fanned out",
			"order_id", evt.OrderID, "type", evt.Type, "recipients", len(evt.Recipients()))
		return nil
	}
}

// handleStockChanged starts the low-stock reorder workflow when an item
// drops into critical stock and automatic reordering is enabled.
func handleStockChanged(a *app.Application) handlerFunc {
	return func(ctx context.Context, msg *message.Message) error {
		var evt inventoryEvents.StockChangedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}
		if !evt.BecameCritical() || !a.Config.AutoReorderEnabled || a.TemporalClient == nil {
			return nil
		}
		in := inventoryWorkflows.LowStockReorderInput{
			VendorID: evt.VendorID,
			ItemID:   evt.ItemID,
			ItemName: evt.Name,
			Quantity: a.Config.AutoReorderQuantity,
		}
		if err := inventoryWorkflows.StartLowStockReorder(ctx, a.TemporalClient.Client, a.Config.TemporalTaskQueue, in); err != nil {
			return err
		}
		a.Logger.InfoContext(ctx, "low stock reorder started",
			"item_id", evt.ItemID, "vendor_id", evt.VendorID, "workflow_id", inventoryWorkflows.WorkflowID(evt.ItemID))
		return nil
	}
}
