package pagination

import (
	"net/http/httptest"
	"testing"

	"takuezy-housing/internal/core/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetParams(t *testing.T) {
	const maxLimit = 100
	tests := []struct {
		query   string
		want    int64
		invalid bool
	}{
		{"", maxLimit, false},
		{"?limit=1", 1, false},
		{"?limit=100", 100, false},
		{"?limit=0", 0, true},
		{"?limit=101", 0, true},
		{"?limit=ten", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			app := fiber.New()
			var got *Params
			var gotErr error
			app.Get("/", func(c *fiber.Ctx) error {
				got, gotErr = GetParams(c, maxLimit)
				return nil
			})

			_, err := app.Test(httptest.NewRequest("GET", "/"+tt.query, nil))
			require.NoError(t, err)

			if tt.invalid {
				assert.ErrorIs(t, gotErr, domain.ErrValidation)
				return
			}
			require.NoError(t, gotErr)
			assert.Equal(t, tt.want, got.Limit)
		})
	}
}
