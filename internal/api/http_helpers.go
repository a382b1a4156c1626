package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/mindguard/internal/models"
)

const (
	contextUserKey      = "current_user"
	contextRequestIDKey = "request_id"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(contextUserKey).(*models.User)
	return user, ok
}

func requestID(c *fiber.Ctx) string {
	id, _ := c.Locals(contextRequestIDKey).(string)
	return id
}
