package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/mindguard/internal/models"
	"github.com/terraincognita07/mindguard/internal/services"
	"go.uber.org/zap"
)

type registerPayload struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8,max=72"`
	DisplayName string `json:"displayName" validate:"max=64"`
}

type loginPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token     string       `json:"token"`
	ExpiresAt string       `json:"expiresAt"`
	User      *models.User `json:"user"`
}

func (handler *Handler) Register(c *fiber.Ctx) error {
	payload := registerPayload{}
	if message := parseAndValidate(c, &payload); message != "" {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	user, err := handler.authService.Register(payload.Email, payload.Password, payload.DisplayName)
	switch {
	case errors.Is(err, services.ErrAuthCredentialsInvalid):
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	case errors.Is(err, services.ErrWeakPassword):
		return apiError(c, fiber.StatusBadRequest, "weak password")
	case errors.Is(err, services.ErrSettingsDisplayNameTooLong):
		return apiError(c, fiber.StatusBadRequest, "display name is too long")
	case errors.Is(err, services.ErrEmailAlreadyRegistered):
		return apiError(c, fiber.StatusConflict, "email already exists")
	case err != nil:
		handler.logger.Error("register failed", zap.String("request_id", requestID(c)), zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "failed to create account")
	}

	return handler.respondWithToken(c, fiber.StatusCreated, &user)
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	limiterKey := requestLimiterKey(c)
	now := handler.now()
	if handler.loginLimiter.blocked(limiterKey, now) {
		return apiError(c, fiber.StatusTooManyRequests, "too many login attempts")
	}

	payload := loginPayload{}
	if message := parseAndValidate(c, &payload); message != "" {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	user, err := handler.authService.Authenticate(payload.Email, payload.Password)
	if errors.Is(err, services.ErrAuthCredentialsInvalid) {
		handler.loginLimiter.addFailure(limiterKey, now)
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	}
	if err != nil {
		handler.logger.Error("login failed", zap.String("request_id", requestID(c)), zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "failed to sign in")
	}

	handler.loginLimiter.reset(limiterKey)
	return handler.respondWithToken(c, fiber.StatusOK, &user)
}

func (handler *Handler) Me(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return c.JSON(user)
}

func (handler *Handler) respondWithToken(c *fiber.Ctx, status int, user *models.User) error {
	token, expiresAt, err := handler.issueAuthToken(user)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}
	return c.Status(status).JSON(authResponse{
		Token:     token,
		ExpiresAt: expiresAt.UTC().Format(time.RFC3339),
		User:      user,
	})
}
