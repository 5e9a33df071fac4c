package handlers

import (
	"strings"

	"takuezy-housing/internal/adapters/http/middleware"
	"takuezy-housing/internal/core/domain"
	"takuezy-housing/internal/core/services"
	"takuezy-housing/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService *services.AuthService
	validate    *Validator
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService, validate *Validator) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validate:    validate,
	}
}

// LoginRequest accepts the OAuth2 password form (username) or an explicit identifier
type LoginRequest struct {
	Username   string `json:"username" form:"username"`
	Identifier string `json:"identifier" form:"identifier"`
	Password   string `json:"password" form:"password"`
}

// Register handles user registration
// @Summary Register new user
// @Description Register with email or phone plus a national id; returns a bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body services.RegisterInput true "Registration data"
// @Success 200 {object} services.TokenResponse
// @Failure 400 {object} response.ErrorBody
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input services.RegisterInput
	if err := h.validate.Bind(c, &input); err != nil {
		return response.FromError(c, err)
	}
	input.FullName = strings.TrimSpace(input.FullName)
	input.NationalID = strings.TrimSpace(input.NationalID)

	token, err := h.authService.Register(c.UserContext(), &input)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.OK(c, token)
}

// Login handles user login
// @Summary Login user
// @Description Authenticate with email, phone or national id
// @Tags Auth
// @Accept x-www-form-urlencoded
// @Accept json
// @Produce json
// @Param username formData string true "Email, phone or national id"
// @Param password formData string true "Password"
// @Success 200 {object} services.TokenResponse
// @Failure 401 {object} response.ErrorBody
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	identifier := strings.TrimSpace(req.Username)
	if identifier == "" {
		identifier = strings.TrimSpace(req.Identifier)
	}
	if identifier == "" || req.Password == "" {
		return response.FromError(c, domain.Validation("username and password are required"))
	}

	token, err := h.authService.Login(c.UserContext(), identifier, req.Password)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.OK(c, token)
}

// Me returns the current user info
// @Summary Current user
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.UserResponse
// @Failure 401 {object} response.ErrorBody
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	return response.OK(c, middleware.CurrentUser(c).ToResponse())
}
