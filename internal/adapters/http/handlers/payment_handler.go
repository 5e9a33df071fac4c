package handlers

import (
	"takuezy-housing/internal/adapters/http/middleware"
	"takuezy-housing/internal/core/services"
	"takuezy-housing/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// PaymentHandler handles payment endpoints
type PaymentHandler struct {
	paymentService *services.PaymentService
	validate       *Validator
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentService *services.PaymentService, validate *Validator) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService, validate: validate}
}

// Init handles payment initiation
// @Summary Pay for a listing
// @Description Mock payment of the listing price; the platform keeps 5%
// @Tags Payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.InitPaymentInput true "Payment"
// @Success 200 {object} services.PaymentResult
// @Failure 403 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /payments/init [post]
func (h *PaymentHandler) Init(c *fiber.Ctx) error {
	var input services.InitPaymentInput
	if err := h.validate.Bind(c, &input); err != nil {
		return response.FromError(c, err)
	}

	result, err := h.paymentService.Init(c.UserContext(), middleware.CurrentActor(c), &input)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.OK(c, result)
}

// Mine lists payments made by the caller
// @Summary My payments
// @Tags Payments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Items
// @Router /payments/me [get]
func (h *PaymentHandler) Mine(c *fiber.Ctx) error {
	payments, err := h.paymentService.Mine(c.UserContext(), middleware.CurrentActor(c))
	if err != nil {
		return response.FromError(c, err)
	}
	return response.List(c, payments)
}

// ForMe lists payments received by the caller
// @Summary Payments for my listings
// @Tags Payments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Items
// @Router /payments/for-me [get]
func (h *PaymentHandler) ForMe(c *fiber.Ctx) error {
	payments, err := h.paymentService.ForOwner(c.UserContext(), middleware.CurrentActor(c))
	if err != nil {
		return response.FromError(c, err)
	}
	return response.List(c, payments)
}
