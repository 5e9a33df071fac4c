package routes

import (
	"time"

	"takuezy-housing/internal/adapters/http/handlers"
	"takuezy-housing/internal/adapters/http/middleware"
	"takuezy-housing/internal/adapters/persistence/repositories"
	"takuezy-housing/internal/adapters/persistence/store"
	"takuezy-housing/internal/config"
	"takuezy-housing/internal/core/services"
	"takuezy-housing/internal/pkg/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/sirupsen/logrus"
)

// Deps are the collaborators the HTTP app is built from
type Deps struct {
	Config  *config.Config
	Logger  *logrus.Logger
	Metrics *metrics.Metrics
	Gateway store.Gateway
	// Inspector reports store health; nil marks the store unavailable
	Inspector store.Inspector
	// Audit is nil when no audit store is configured
	Audit repositories.AuditRepository
	// LimiterStorage is nil for in-process rate limit counters
	LimiterStorage fiber.Storage
}

// NewApp creates the Fiber app with middlewares and every route.
// The returned reconciler shares the app's stores and is not started.
func NewApp(deps Deps) (*fiber.App, *services.ReconcilerService) {
	app := fiber.New(fiber.Config{
		AppName:      "Takuezy Housing API",
		ErrorHandler: middleware.ErrorHandler(deps.Logger),
	})

	middleware.Setup(app, deps.Config, deps.LimiterStorage)
	app.Use(deps.Metrics.Middleware())

	reconciler := Setup(app, deps)
	return app, reconciler
}

// Setup configures all routes for the application
func Setup(app *fiber.App, deps Deps) *services.ReconcilerService {
	cfg, log := deps.Config, deps.Logger

	// Initialize repositories
	userRepo := repositories.NewUserRepository(deps.Gateway)
	listingRepo := repositories.NewListingRepository(deps.Gateway)
	appRepo := repositories.NewApplicationRepository(deps.Gateway)
	paymentRepo := repositories.NewPaymentRepository(deps.Gateway)

	// Initialize services
	audit := services.NewAuditService(deps.Audit, log)
	credentials := services.NewCredentialService(cfg.JWT)
	authService := services.NewAuthService(userRepo, credentials, deps.Metrics, log)
	listingService := services.NewListingService(listingRepo, audit, log)
	appService := services.NewApplicationService(appRepo, listingRepo, audit, deps.Metrics, log)
	paymentService := services.NewPaymentService(paymentRepo, listingRepo, cfg.Platform, audit, deps.Metrics, log)
	adminService := services.NewAdminService(userRepo, audit)
	reconciler := services.NewReconcilerService(paymentService)

	// Initialize handlers
	validate := handlers.NewValidator()
	healthHandler := handlers.NewHealthHandler(cfg, deps.Inspector)
	authHandler := handlers.NewAuthHandler(authService, validate)
	listingHandler := handlers.NewListingHandler(listingService, validate)
	appHandler := handlers.NewApplicationHandler(appService, validate)
	paymentHandler := handlers.NewPaymentHandler(paymentService, validate)
	adminHandler := handlers.NewAdminHandler(adminService)

	requireAuth := middleware.AuthMiddleware(authService)
	authLimiter := middleware.AuthRateLimiter(cfg, deps.LimiterStorage)

	// Health check & root routes
	app.Get("/", middleware.CacheControl(5*time.Minute), healthHandler.Root)
	app.Get("/api/hello", middleware.CacheControl(5*time.Minute), healthHandler.Hello)
	app.Get("/health", healthHandler.HealthCheck)
	app.Get("/test", healthHandler.TestDatabase)
	app.Get("/metrics", deps.Metrics.Handler())

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Auth routes (public, stricter limit)
	authRoutes := app.Group("/auth", middleware.NoCacheHeaders())
	authRoutes.Post("/register", authLimiter, authHandler.Register)
	authRoutes.Post("/login", authLimiter, authHandler.Login)
	authRoutes.Get("/me", requireAuth, authHandler.Me)

	// Listing routes
	listingRoutes := app.Group("/listings")
	listingRoutes.Get("/", middleware.OptionalAuth(authService), listingHandler.Search)
	listingRoutes.Post("/", requireAuth, listingHandler.Create)
	listingRoutes.Patch("/:id/availability", requireAuth, listingHandler.SetAvailability)

	// Application routes (authenticated)
	appRoutes := app.Group("/applications", requireAuth, middleware.NoCacheHeaders())
	appRoutes.Post("/", appHandler.Create)
	appRoutes.Get("/me", appHandler.Mine)
	appRoutes.Get("/for-me", appHandler.ForMe)
	appRoutes.Post("/:id/approve", appHandler.Approve)

	// Payment routes (authenticated)
	paymentRoutes := app.Group("/payments", requireAuth, middleware.NoCacheHeaders())
	paymentRoutes.Post("/init", paymentHandler.Init)
	paymentRoutes.Get("/me", paymentHandler.Mine)
	paymentRoutes.Get("/for-me", paymentHandler.ForMe)

	// Admin routes (admin only)
	adminRoutes := app.Group("/admin", requireAuth, middleware.AdminOnly(), middleware.NoCacheHeaders())
	adminRoutes.Get("/users", adminHandler.ListUsers)
	adminRoutes.Post("/users/:id/approve", adminHandler.Approve)
	adminRoutes.Post("/users/:id/verify-id", adminHandler.VerifyID)
	adminRoutes.Get("/audit", adminHandler.AuditTrail)

	return reconciler
}
