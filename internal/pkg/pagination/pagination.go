package pagination

import (
	"fmt"
	"strconv"

	"takuezy-housing/internal/core/domain"

	"github.com/gofiber/fiber/v2"
)

// Params represents list parameters
type Params struct {
	Limit int64 `json:"limit"`
}

// GetParams reads ?limit= in 1..max, defaulting to max when absent
func GetParams(c *fiber.Ctx, max int64) (*Params, error) {
	raw := c.Query("limit")
	if raw == "" {
		return &Params{Limit: max}, nil
	}

	limit, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || limit < 1 || limit > max {
		return nil, domain.Validation(fmt.Sprintf("limit must be an integer between 1 and %d", max))
	}
	return &Params{Limit: limit}, nil
}
