package handlers

import (
	"takuezy-housing/internal/adapters/http/middleware"
	"takuezy-housing/internal/core/services"
	"takuezy-housing/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ApplicationHandler handles rental application endpoints
type ApplicationHandler struct {
	appService *services.ApplicationService
	validate   *Validator
}

// NewApplicationHandler creates a new application handler
func NewApplicationHandler(appService *services.ApplicationService, validate *Validator) *ApplicationHandler {
	return &ApplicationHandler{appService: appService, validate: validate}
}

// Create handles application submission
// @Summary Apply for a listing
// @Tags Applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CreateApplicationInput true "Application"
// @Success 200 {object} response.Created
// @Failure 403 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /applications [post]
func (h *ApplicationHandler) Create(c *fiber.Ctx) error {
	var input services.CreateApplicationInput
	if err := h.validate.Bind(c, &input); err != nil {
		return response.FromError(c, err)
	}

	id, err := h.appService.Apply(c.UserContext(), middleware.CurrentActor(c), &input)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.CreatedID(c, id)
}

// Approve handles application decisions
// @Summary Approve or reject an application
// @Tags Applications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Application ID"
// @Param approve query bool false "true approves, false rejects (default true)"
// @Success 200 {object} response.Ack
// @Failure 403 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /applications/{id}/approve [post]
func (h *ApplicationHandler) Approve(c *fiber.Ctx) error {
	approve, err := queryBool(c, "approve", true)
	if err != nil {
		return response.FromError(c, err)
	}

	if err := h.appService.Decide(c.UserContext(), middleware.CurrentActor(c), c.Params("id"), approve); err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c)
}

// Mine lists the caller's applications
// @Summary My applications
// @Tags Applications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Items
// @Router /applications/me [get]
func (h *ApplicationHandler) Mine(c *fiber.Ctx) error {
	apps, err := h.appService.Mine(c.UserContext(), middleware.CurrentActor(c))
	if err != nil {
		return response.FromError(c, err)
	}
	return response.List(c, apps)
}

// ForMe lists applications made against the caller's listings
// @Summary Applications for my listings
// @Tags Applications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Items
// @Router /applications/for-me [get]
func (h *ApplicationHandler) ForMe(c *fiber.Ctx) error {
	apps, err := h.appService.ForOwner(c.UserContext(), middleware.CurrentActor(c))
	if err != nil {
		return response.FromError(c, err)
	}
	return response.List(c, apps)
}
