package response

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"takuezy-housing/internal/core/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		detail string
	}{
		{"validation", domain.ErrUserAlreadyExists, 400, "User already exists"},
		{"unauthorized", domain.ErrInvalidCredentials, 401, "Invalid credentials"},
		{"forbidden", domain.ErrAdminOnly, 403, "Admin only"},
		{"not found", domain.ErrListingNotFound, 404, "Listing not found"},
		{"internal", errors.New("socket closed"), 500, "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New(fiber.Config{
				ErrorHandler: func(c *fiber.Ctx, err error) error {
					return InternalServerError(c)
				},
			})
			app.Get("/", func(c *fiber.Ctx) error { return FromError(c, tt.err) })

			resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)

			raw, _ := io.ReadAll(resp.Body)
			var body ErrorBody
			require.NoError(t, json.Unmarshal(raw, &body))
			assert.False(t, body.Success)
			assert.Equal(t, tt.detail, body.Detail)
		})
	}
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, 500, StatusFor(domain.KindInternal))
	assert.Equal(t, 404, StatusFor(domain.KindNotFound))
}
