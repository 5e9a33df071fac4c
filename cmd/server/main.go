package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"takuezy-housing/internal/adapters/http/routes"
	"takuezy-housing/internal/adapters/persistence/repositories"
	"takuezy-housing/internal/adapters/persistence/store"
	"takuezy-housing/internal/config"
	"takuezy-housing/internal/pkg/metrics"
	"takuezy-housing/internal/pkg/ratelimit"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	_ "takuezy-housing/docs" // Swagger docs
)

// @title Takuezy Housing API
// @version 1.0
// @description Rental marketplace API: listings, applications, payments and moderation.

// @contact.name API Support
// @contact.email support@takuezy.co.zw

// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Load configuration
	cfg, err := config.Load(log)
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}
	if cfg.IsProd() {
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	// Connect to the document store
	client, db, err := config.ConnectMongo(context.Background(), cfg, log)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	gw := store.NewMongo(db)

	// Optional SQL audit log
	auditDB, err := config.ConnectAudit(cfg, log)
	if err != nil {
		log.Fatalf("❌ Failed to connect to audit database: %v", err)
	}
	var auditRepo repositories.AuditRepository
	if auditDB != nil {
		auditRepo = repositories.NewAuditRepository(auditDB)
	}

	// Shared rate limit counters when Redis is configured
	var limiterStorage fiber.Storage
	if cfg.RateLimit.RedisURL != "" {
		redisStorage, err := ratelimit.NewRedisStorage(cfg.RateLimit.RedisURL)
		if err != nil {
			log.Fatalf("❌ Failed to connect to redis: %v", err)
		}
		defer redisStorage.Close()
		limiterStorage = redisStorage
		log.Info("✅ Rate limiter using Redis")
	}

	app, reconciler := routes.NewApp(routes.Deps{
		Config:         cfg,
		Logger:         log,
		Metrics:        metrics.New(),
		Gateway:        gw,
		Inspector:      gw,
		Audit:          auditRepo,
		LimiterStorage: limiterStorage,
	})

	// Receipt reconciler
	if cfg.ReconcilerEnabled() {
		if err := reconciler.Start(cfg.ReconcileSchedule); err != nil {
			log.Fatalf("❌ Failed to start reconciler: %v", err)
		}
	}

	// Graceful shutdown
	go gracefulShutdown(app, log)

	// Start server
	log.Infof("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}

	reconciler.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.Disconnect(ctx); err != nil {
		log.WithError(err).Error("❌ Error disconnecting from MongoDB")
	}
	if err := config.CloseAudit(auditDB); err != nil {
		log.WithError(err).Error("❌ Error closing audit database")
	}
	log.Info("✅ Server stopped gracefully")
}

// gracefulShutdown stops accepting connections on SIGINT or SIGTERM
func gracefulShutdown(app *fiber.App, log *logrus.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("🛑 Shutting down server...")
	if err := app.ShutdownWithTimeout(30 * time.Second); err != nil {
		log.WithError(err).Error("❌ Error during shutdown")
	}
}
