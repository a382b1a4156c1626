package api

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// GetAnalysis scores the caller's trailing entry window.
func (handler *Handler) GetAnalysis(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	analysis, err := handler.analysisService.AnalyzeUser(user.ID)
	if err != nil {
		handler.logger.Error("analysis failed", zap.String("request_id", requestID(c)), zap.Uint("user_id", user.ID), zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "failed to analyze entries")
	}
	return c.JSON(analysis)
}
