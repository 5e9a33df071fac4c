package handlers

import (
	"takuezy-housing/internal/adapters/http/middleware"
	"takuezy-housing/internal/adapters/persistence/repositories"
	"takuezy-housing/internal/core/services"
	"takuezy-housing/internal/pkg/pagination"
	"takuezy-housing/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ListingHandler handles listing endpoints
type ListingHandler struct {
	listingService *services.ListingService
	validate       *Validator
}

// NewListingHandler creates a new listing handler
func NewListingHandler(listingService *services.ListingService, validate *Validator) *ListingHandler {
	return &ListingHandler{listingService: listingService, validate: validate}
}

// AvailabilityRequest is the optional JSON body of the availability update
type AvailabilityRequest struct {
	IsAvailable *bool `json:"is_available"`
}

// Create handles listing creation
// @Summary Create listing
// @Tags Listings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CreateListingInput true "Listing"
// @Success 200 {object} response.Created
// @Failure 400 {object} response.ErrorBody
// @Failure 403 {object} response.ErrorBody
// @Router /listings [post]
func (h *ListingHandler) Create(c *fiber.Ctx) error {
	var input services.CreateListingInput
	if err := h.validate.Bind(c, &input); err != nil {
		return response.FromError(c, err)
	}

	id, err := h.listingService.Create(c.UserContext(), middleware.CurrentActor(c), &input)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.CreatedID(c, id)
}

// Search handles listing search
// @Summary Search listings
// @Description Every given filter must match; q is a case-insensitive literal substring of title, description or any facility
// @Tags Listings
// @Produce json
// @Param q query string false "Text to find"
// @Param property_type query string false "house, room, apartment, lodge_room or other"
// @Param min_price query number false "Inclusive lower price bound"
// @Param max_price query number false "Inclusive upper price bound"
// @Param is_available query bool false "Availability (default true)"
// @Param limit query int false "1..100 (default 100)"
// @Success 200 {object} response.Items
// @Failure 400 {object} response.ErrorBody
// @Router /listings [get]
func (h *ListingHandler) Search(c *fiber.Ctx) error {
	params, err := pagination.GetParams(c, repositories.SearchLimit)
	if err != nil {
		return response.FromError(c, err)
	}

	search := repositories.ListingSearch{
		Query: c.Query("q"),
		Limit: params.Limit,
	}
	if pt := c.Query("property_type"); pt != "" {
		search.PropertyType = &pt
	}

	available, err := queryBool(c, "is_available", true)
	if err != nil {
		return response.FromError(c, err)
	}
	search.IsAvailable = &available

	if search.MinPrice, err = queryFloat(c, "min_price"); err != nil {
		return response.FromError(c, err)
	}
	if search.MaxPrice, err = queryFloat(c, "max_price"); err != nil {
		return response.FromError(c, err)
	}

	listings, err := h.listingService.Search(c.UserContext(), search)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.List(c, listings)
}

// SetAvailability handles availability updates
// @Summary Set listing availability
// @Tags Listings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Listing ID"
// @Param is_available query bool true "New availability"
// @Success 200 {object} response.Ack
// @Failure 403 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /listings/{id}/availability [patch]
func (h *ListingHandler) SetAvailability(c *fiber.Ctx) error {
	var available bool
	if c.Query("is_available") != "" {
		v, err := queryBool(c, "is_available", true)
		if err != nil {
			return response.FromError(c, err)
		}
		available = v
	} else {
		var req AvailabilityRequest
		if len(c.Body()) > 0 {
			if err := c.BodyParser(&req); err != nil {
				return response.BadRequest(c, "Invalid request body")
			}
		}
		if req.IsAvailable == nil {
			return response.BadRequest(c, "is_available is required")
		}
		available = *req.IsAvailable
	}

	if err := h.listingService.SetAvailability(c.UserContext(), middleware.CurrentActor(c), c.Params("id"), available); err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c)
}
