package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/mindguard/internal/services"
)

func (handler *Handler) ListMembers(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	summaries, err := handler.counselorService.ListMemberSummaries(user)
	if errors.Is(err, services.ErrViewerForbidden) {
		return apiError(c, fiber.StatusForbidden, "counselor access required")
	}
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load members")
	}
	return c.JSON(summaries)
}

func (handler *Handler) GetMemberAnalysis(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	memberID, err := c.ParamsInt("id")
	if err != nil || memberID <= 0 {
		return apiError(c, fiber.StatusBadRequest, "invalid member id")
	}

	analysis, err := handler.counselorService.MemberAnalysis(user, uint(memberID))
	switch {
	// A member assigned to someone else is reported as missing.
	case errors.Is(err, services.ErrMemberNotFound), errors.Is(err, services.ErrViewerForbidden):
		return apiError(c, fiber.StatusNotFound, "member not found")
	case err != nil:
		return apiError(c, fiber.StatusInternalServerError, "failed to analyze entries")
	}
	return c.JSON(analysis)
}
