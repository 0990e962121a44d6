package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"quizapp_backend/internals/configs"
	helper "quizapp_backend/internals/helpers"
	"quizapp_backend/internals/testutil"
)

func newApp(rateLimit bool) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: helper.FiberErrorHandler})
	SetupMiddlewares(app, &configs.Config{CorsAllowOrigins: "*", RateLimitEnabled: rateLimit})
	app.Get("/ok", func(c *fiber.Ctx) error { return helper.JsonOK(c, "", nil) })
	app.Get("/panic", func(c *fiber.Ctx) error { panic("boom") })
	return app
}

func TestPanicBecomesEnvelope(t *testing.T) {
	status, env := testutil.Do(t, newApp(false), httptest.NewRequest(http.MethodGet, "/panic", nil), "")
	testutil.AssertStatus(t, status, fiber.StatusInternalServerError, env)
	if env.Status || env.Message == "" {
		t.Fatalf("envelope = %+v", env)
	}
}

func TestRequestIDHeader(t *testing.T) {
	app := newApp(false)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ok", nil), -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.Header.Get("X-Request-ID") == "" {
		t.Fatalf("missing X-Request-ID")
	}

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	resp, err = app.Test(req, -1)
	if err != nil || resp.Header.Get("X-Request-ID") != "abc-123" {
		t.Fatalf("request id not echoed: %v", err)
	}
}

func TestRateLimiterEnvelope(t *testing.T) {
	app := fiber.New()
	app.Post("/login", LoginRateLimiter(), func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	var status int
	var env testutil.Envelope
	for i := 0; i < 6; i++ {
		status, env = testutil.Do(t, app, httptest.NewRequest(http.MethodPost, "/login", nil), "")
	}
	testutil.AssertStatus(t, status, fiber.StatusTooManyRequests, env)
	if env.Status || env.Message == "" {
		t.Fatalf("envelope = %+v", env)
	}
}
