package campgroundValidator_test

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yelpcamp/middleware"
	campgroundValidator "yelpcamp/validators/campground"
)

// newValidatorApp wires the middleware under test in front of a probe handler
// that reports whether the request passed validation.
func newValidatorApp(handler fiber.Handler) (*fiber.App, *bool) {
	reached := false
	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
	})
	app.Post("/probe", handler, func(c *fiber.Ctx) error {
		reached = true
		return c.SendStatus(fiber.StatusOK)
	})
	return app, &reached
}

func postJSON(t *testing.T, app *fiber.App, payload string) (int, string) {
	t.Helper()

	req := httptest.NewRequest(fiber.MethodPost, "/probe", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestCreateAcceptsValidPayload(t *testing.T) {
	app, reached := newValidatorApp(campgroundValidator.Create())

	status, _ := postJSON(t, app, `{
		"title": "Pine Ridge", "location": "Austin, TX",
		"description": "quiet", "image": "http://x/y.jpg", "price": 15
	}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.True(t, *reached)
}

func TestCreateShortCircuitsBeforeHandler(t *testing.T) {
	app, reached := newValidatorApp(campgroundValidator.Create())

	status, body := postJSON(t, app, `{"title": "Pine Ridge"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.False(t, *reached)

	// The single message lists every failing field
	assert.Contains(t, body, "location is required")
	assert.Contains(t, body, "description is required")
	assert.Contains(t, body, "image is required")
	assert.Contains(t, body, "price is required")
	assert.NotContains(t, body, "title")
}

func TestCreateRejectsNegativePrice(t *testing.T) {
	app, reached := newValidatorApp(campgroundValidator.Create())

	status, body := postJSON(t, app, `{
		"title": "Pine Ridge", "location": "Austin, TX",
		"description": "quiet", "image": "http://x/y.jpg", "price": -0.01
	}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.False(t, *reached)
	assert.Contains(t, body, "price must be 0 or greater")
}

func TestCreateRejectsMalformedBody(t *testing.T) {
	app, reached := newValidatorApp(campgroundValidator.Create())

	status, body := postJSON(t, app, `{"title": `)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.False(t, *reached)
	assert.Contains(t, body, "Invalid request body!")
}

func TestUpdateAllowsPartialPayload(t *testing.T) {
	app, reached := newValidatorApp(campgroundValidator.Update())

	status, _ := postJSON(t, app, `{"price": 25}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.True(t, *reached)
}

func TestUpdateValidatesProvidedFieldsOnly(t *testing.T) {
	app, reached := newValidatorApp(campgroundValidator.Update())

	status, body := postJSON(t, app, `{"title": "", "price": -3}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.False(t, *reached)
	assert.Contains(t, body, "title must not be empty")
	assert.Contains(t, body, "price must be 0 or greater")
	assert.NotContains(t, body, "location")
}
