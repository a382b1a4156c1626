package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/mindguard/internal/services"
	"go.uber.org/zap"
)

type counselorPayload struct {
	Email string `json:"email" validate:"required,email"`
}

type profilePayload struct {
	DisplayName string `json:"displayName" validate:"max=64"`
}

type changePasswordPayload struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8,max=72"`
}

type deleteAccountPayload struct {
	Password string `json:"password" validate:"required"`
}

func (handler *Handler) AssignCounselor(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	if user.IsCounselor() {
		return apiError(c, fiber.StatusForbidden, "counselors cannot assign a counselor")
	}

	payload := counselorPayload{}
	if message := parseAndValidate(c, &payload); message != "" {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	counselor, err := handler.counselorService.AssignCounselor(user, payload.Email)
	switch {
	case errors.Is(err, services.ErrCounselorNotFound):
		return apiError(c, fiber.StatusNotFound, "counselor not found")
	case errors.Is(err, services.ErrCounselorSelfAssign):
		return apiError(c, fiber.StatusBadRequest, "cannot assign yourself")
	case err != nil:
		handler.logger.Error("assign counselor failed", zap.String("request_id", requestID(c)), zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "failed to update counselor")
	}

	return c.JSON(fiber.Map{
		"counselorId":    counselor.ID,
		"counselorEmail": counselor.Email,
		"counselorName":  counselor.DisplayName,
	})
}

func (handler *Handler) RevokeCounselor(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	if err := handler.counselorService.RevokeCounselor(user); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update counselor")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) UpdateProfile(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := profilePayload{}
	if message := parseAndValidate(c, &payload); message != "" {
		return apiError(c, fiber.StatusBadRequest, message)
	}
	_, err := handler.settingsService.UpdateDisplayName(user.ID, payload.DisplayName)
	if errors.Is(err, services.ErrSettingsDisplayNameTooLong) {
		return apiError(c, fiber.StatusBadRequest, "display name is too long")
	}
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update profile")
	}

	updated, err := handler.authService.FindByID(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load profile")
	}
	return c.JSON(updated)
}

func (handler *Handler) ChangePassword(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := changePasswordPayload{}
	if message := parseAndValidate(c, &payload); message != "" {
		return apiError(c, fiber.StatusBadRequest, message)
	}
	err := handler.settingsService.ChangePassword(user.ID, user.PasswordHash, payload.CurrentPassword, payload.NewPassword)
	switch {
	case errors.Is(err, services.ErrSettingsPasswordMissing), errors.Is(err, services.ErrSettingsPasswordInvalid):
		return apiError(c, fiber.StatusUnauthorized, "invalid current password")
	case errors.Is(err, services.ErrSettingsNewPasswordMustDiffer):
		return apiError(c, fiber.StatusBadRequest, "new password must differ from current password")
	case errors.Is(err, services.ErrWeakPassword):
		return apiError(c, fiber.StatusBadRequest, "weak password")
	case err != nil:
		return apiError(c, fiber.StatusInternalServerError, "failed to update password")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) DeleteAccount(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := deleteAccountPayload{}
	if message := parseAndValidate(c, &payload); message != "" {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	err := handler.settingsService.DeleteAccount(user.ID, user.PasswordHash, payload.Password)
	switch {
	case errors.Is(err, services.ErrSettingsPasswordMissing), errors.Is(err, services.ErrSettingsPasswordInvalid):
		return apiError(c, fiber.StatusUnauthorized, "invalid password")
	case err != nil:
		handler.logger.Error("delete account failed", zap.String("request_id", requestID(c)), zap.Uint("user_id", user.ID), zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "failed to delete account")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
