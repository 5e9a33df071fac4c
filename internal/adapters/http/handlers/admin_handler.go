package handlers

import (
	"takuezy-housing/internal/adapters/http/middleware"
	"takuezy-housing/internal/core/services"
	"takuezy-housing/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AdminHandler handles user moderation endpoints
type AdminHandler struct {
	adminService *services.AdminService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminService *services.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// ListUsers handles listing all users
// @Summary List users
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Items
// @Failure 403 {object} response.ErrorBody
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.adminService.ListUsers(c.UserContext(), middleware.CurrentActor(c))
	if err != nil {
		return response.FromError(c, err)
	}
	return response.List(c, users)
}

// Approve handles user approval
// @Summary Approve or unapprove a user
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param approve query bool false "default true"
// @Success 200 {object} response.Ack
// @Failure 403 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /admin/users/{id}/approve [post]
func (h *AdminHandler) Approve(c *fiber.Ctx) error {
	approve, err := queryBool(c, "approve", true)
	if err != nil {
		return response.FromError(c, err)
	}
	if err := h.adminService.SetApproved(c.UserContext(), middleware.CurrentActor(c), c.Params("id"), approve); err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c)
}

// VerifyID handles national id verification
// @Summary Mark a user's national id as verified
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param verified query bool false "default true"
// @Success 200 {object} response.Ack
// @Failure 403 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /admin/users/{id}/verify-id [post]
func (h *AdminHandler) VerifyID(c *fiber.Ctx) error {
	verified, err := queryBool(c, "verified", true)
	if err != nil {
		return response.FromError(c, err)
	}
	if err := h.adminService.SetIDVerified(c.UserContext(), middleware.CurrentActor(c), c.Params("id"), verified); err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c)
}

// AuditTrail lists the recorded events for a resource
// @Summary Audit trail
// @Description Empty when no audit store is configured
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param resource_type query string true "user, listing, application or payment"
// @Param resource_id query string true "Resource ID"
// @Success 200 {object} response.Items
// @Failure 400 {object} response.ErrorBody
// @Failure 403 {object} response.ErrorBody
// @Router /admin/audit [get]
func (h *AdminHandler) AuditTrail(c *fiber.Ctx) error {
	entries, err := h.adminService.AuditTrail(c.UserContext(), middleware.CurrentActor(c), c.Query("resource_type"), c.Query("resource_id"))
	if err != nil {
		return response.FromError(c, err)
	}
	return response.List(c, entries)
}
