package handlers

import (
	"context"
	"time"

	"takuezy-housing/internal/adapters/persistence/store"
	"takuezy-housing/internal/config"

	"github.com/gofiber/fiber/v2"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	cfg   *config.Config
	store store.Inspector
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(cfg *config.Config, inspector store.Inspector) *HealthHandler {
	return &HealthHandler{cfg: cfg, store: inspector}
}

// Root handles root endpoint
// @Summary Root endpoint
// @Description Returns API status
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Takuezy Housing API is running",
		"mode":    h.cfg.AppMode,
		"docs":    "/swagger/index.html",
	})
}

// Hello handles the frontend connectivity check
// @Summary Hello
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/hello [get]
func (h *HealthHandler) Hello(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Hello from the backend API!"})
}

// HealthCheck handles health check
// @Summary Health check
// @Description Check API and document store health
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health [get]
func (h *HealthHandler) HealthCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	status, dbStatus, code := "ok", "healthy", fiber.StatusOK
	if h.store == nil || h.store.Ping(ctx) != nil {
		status, dbStatus, code = "degraded", "unhealthy", fiber.StatusServiceUnavailable
	}

	return c.Status(code).JSON(fiber.Map{
		"status": status,
		"checks": fiber.Map{
			"api":      "healthy",
			"database": dbStatus,
		},
	})
}

// TestDatabase reports document store diagnostics
// @Summary Database diagnostics
// @Description Configuration flags, connection status and up to 10 collection names
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /test [get]
func (h *HealthHandler) TestDatabase(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
	defer cancel()

	result := fiber.Map{
		"backend":           "✅ Running",
		"database":          "❌ Not Available",
		"database_url":      setFlag(h.cfg.Database.URLSet),
		"database_name":     setFlag(h.cfg.Database.NameSet),
		"connection_status": "Not Connected",
		"collections":       []string{},
	}

	if h.store != nil {
		if err := h.store.Ping(ctx); err != nil {
			result["database"] = "⚠️ Connected but Error: " + truncate(err.Error(), 50)
		} else {
			result["connection_status"] = "Connected"
			result["database"] = "✅ Available"

			names, err := h.store.CollectionNames(ctx)
			if err != nil {
				result["database"] = "⚠️ Connected but Error: " + truncate(err.Error(), 50)
			} else {
				if len(names) > 10 {
					names = names[:10]
				}
				if names != nil {
					result["collections"] = names
				}
				result["database"] = "✅ Connected & Working"
			}
		}
		result["store"] = h.store.Name()
	}

	return c.JSON(result)
}

func setFlag(set bool) string {
	if set {
		return "✅ Set"
	}
	return "❌ Not Set"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
