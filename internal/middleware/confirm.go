package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// RequireConfirm rejects the request unless query param key equals value.
// Used on destructive routes such as clearing the store.
func RequireConfirm(key, value string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Query(key) != value {
			return c.Status(400).JSON(fiber.Map{
				"error": "This action requires " + key + "=" + value,
			})
		}
		return c.Next()
	}
}
