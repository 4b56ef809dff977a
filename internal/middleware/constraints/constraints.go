package constraints

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofrs/uuid"
)

// RequireUUID is a Fiber middleware that ensures a path parameter is a valid UUID.
// If the parameter is not a valid UUID, it returns 404 Not Found (route doesn't match).
// This effectively acts as a route constraint by preventing the handler from being called.
//
// Static routes like /feed must be registered BEFORE parameterized routes like /:postId
// to ensure correct route matching precedence.
func RequireUUID(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		paramValue := c.Params(param)
		if paramValue == "" {
			// No parameter value, continue (might be optional)
			return c.Next()
		}
		if _, err := uuid.FromString(paramValue); err != nil {
			return c.SendStatus(fiber.StatusNotFound)
		}
		return c.Next()
	}
}
