package metrics

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainCounters(t *testing.T) {
	m := New()

	m.Registered()
	m.Login(true)
	m.Login(false)
	m.Login(false)
	m.Payment("ecocash", 5)
	m.Payment("ecocash", 0.51)
	m.Decision("approved")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.registrations))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.logins.WithLabelValues("failure")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.payments.WithLabelValues("ecocash")))
	assert.InDelta(t, 5.51, testutil.ToFloat64(m.platformFees), 1e-9)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.decisions.WithLabelValues("approved")))
}

func TestHandlerExposesRequests(t *testing.T) {
	m := New()
	app := fiber.New()
	app.Use(m.Middleware())
	app.Get("/ping", func(c *fiber.Ctx) error { return c.SendString("pong") })
	app.Get("/metrics", m.Handler())

	_, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
	require.NoError(t, err)

	resp, err := app.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `takuezy_http_requests_total{method="GET",route="/ping",status="200"} 1`)
}
