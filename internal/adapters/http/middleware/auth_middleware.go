package middleware

import (
	"strings"

	"takuezy-housing/internal/adapters/persistence/models"
	"takuezy-housing/internal/core/domain"
	"takuezy-housing/internal/core/policy"
	"takuezy-housing/internal/core/services"
	"takuezy-housing/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

const localUser = "user"

// bearerToken extracts the token from the Authorization header
func bearerToken(c *fiber.Ctx) string {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}
	return ""
}

// AuthMiddleware requires a valid bearer token and loads the acting user
func AuthMiddleware(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c)
		if token == "" {
			c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
			return response.Unauthorized(c, "Not authenticated")
		}

		user, err := auth.CurrentUser(c.UserContext(), token)
		if err != nil {
			return response.FromError(c, err)
		}

		c.Locals(localUser, user)
		return c.Next()
	}
}

// OptionalAuth loads the acting user when a valid token is present and never rejects
func OptionalAuth(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if token := bearerToken(c); token != "" {
			if user, err := auth.CurrentUser(c.UserContext(), token); err == nil {
				c.Locals(localUser, user)
			}
		}
		return c.Next()
	}
}

// AdminOnly rejects authenticated callers that are not admins
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := c.Locals(localUser).(*models.User); !ok {
			return response.FromError(c, domain.ErrCouldNotValidate)
		}
		if err := policy.RequireAdmin(CurrentActor(c)); err != nil {
			return response.FromError(c, err)
		}
		return c.Next()
	}
}

// CurrentUser returns the user loaded by AuthMiddleware, or nil
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(localUser).(*models.User)
	return user
}

// CurrentActor returns the acting user as a policy actor; the zero Actor when anonymous
func CurrentActor(c *fiber.Ctx) policy.Actor {
	user := CurrentUser(c)
	if user == nil {
		return policy.Actor{}
	}
	return policy.Actor{ID: user.ID, Role: user.Role}
}
