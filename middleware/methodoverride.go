package middleware

import "github.com/gofiber/fiber/v2"

// MethodOverride lets HTML forms issue PATCH and DELETE requests by posting a
// _method field (or query parameter). The request is routed again under the
// overridden verb, so the route table only ever deals in canonical methods.
func MethodOverride(c *fiber.Ctx) error {
	if c.Method() == fiber.MethodPost {
		override := c.FormValue("_method")
		if override == "" {
			override = c.Query("_method")
		}
		switch override {
		case fiber.MethodPut, fiber.MethodPatch, fiber.MethodDelete:
			c.Method(override)
			return c.RestartRouting()
		}
	}
	return c.Next()
}
