package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// GetClientID returns the caller identified by the auth middleware, or ""
// when authentication is disabled.
func GetClientID(c *fiber.Ctx) string {
	clientID, _ := c.Locals("client_id").(string)
	return clientID
}
