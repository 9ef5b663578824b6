package middleware

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
)

// Messages shared between the terminal error handler and the catch-all route
const (
	DefaultErrorMessage = "Oh no, something went wrong!"
	PageNotFoundMessage = "Page not found!"
)

// NotFound is the terminal catch-all. It is registered after every router, so
// any verb+path combination without a handler lands here instead of the
// framework default page.
func NotFound(c *fiber.Ctx) error {
	return fiber.NewError(fiber.StatusNotFound, PageNotFoundMessage)
}

// ErrorHandler is the single translation point for every failed request.
// Validation and not-found failures arrive as *fiber.Error with their status
// already set; anything else is an internal fault and gets the 500 defaults.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := DefaultErrorMessage

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		if e.Message != "" {
			message = e.Message
		}
	} else {
		log.Printf("[ERROR] %s %s: %v", c.Method(), c.Path(), err)
	}

	if renderErr := c.Status(code).Render("error", fiber.Map{
		"Title":      "Error",
		"StatusCode": code,
		"Message":    message,
	}, "layouts/main"); renderErr != nil {
		return c.Status(code).SendString(message)
	}
	return nil
}
