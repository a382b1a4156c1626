package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	user, err := handler.authenticateRequest(c)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	c.Locals(contextUserKey, user)
	return c.Next()
}

func (handler *Handler) CounselorOnly(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	if !user.IsCounselor() {
		return apiError(c, fiber.StatusForbidden, "counselor access required")
	}
	return c.Next()
}

// RequestLogger tags each request with an id and logs it once the handler chain returns.
func (handler *Handler) RequestLogger(c *fiber.Ctx) error {
	start := time.Now()
	id := c.Get(fiber.HeaderXRequestID)
	if id == "" {
		id = uuid.NewString()
	}
	c.Locals(contextRequestIDKey, id)
	c.Set(fiber.HeaderXRequestID, id)

	chainErr := c.Next()

	fields := []zap.Field{
		zap.String("request_id", id),
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Int("status", c.Response().StatusCode()),
		zap.String("ip", c.IP()),
		zap.Duration("latency", time.Since(start)),
	}
	if user, ok := currentUser(c); ok {
		fields = append(fields, zap.Uint("user_id", user.ID))
	}
	if chainErr != nil {
		handler.logger.Error("request failed", append(fields, zap.Error(chainErr))...)
		return chainErr
	}
	handler.logger.Info("request", fields...)
	return nil
}
