package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/mindguard/internal/scoring"
	"github.com/terraincognita07/mindguard/internal/services"
)

type assessmentPayload struct {
	Answers map[string]int `json:"answers" validate:"required,min=1,dive,min=0,max=3"`
}

func (handler *Handler) GetAssessmentQuestions(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"questions": scoring.Questions(),
		"options":   scoring.AnswerOptions,
	})
}

func (handler *Handler) SubmitAssessment(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := assessmentPayload{}
	if message := parseAndValidate(c, &payload); message != "" {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	assessment, err := handler.assessmentService.Submit(user.ID, payload.Answers)
	switch {
	case errors.Is(err, services.ErrUnknownQuestion),
		errors.Is(err, services.ErrInvalidAnswer),
		errors.Is(err, services.ErrAssessmentIncomplete):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	case err != nil:
		return apiError(c, fiber.StatusInternalServerError, "failed to save assessment")
	}
	return c.Status(fiber.StatusCreated).JSON(assessment)
}

func (handler *Handler) GetAssessmentHistory(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	limit := c.QueryInt("limit", services.DefaultAssessmentHistoryLimit)
	if limit <= 0 || limit > 100 {
		return apiError(c, fiber.StatusBadRequest, "invalid limit")
	}

	assessments, err := handler.assessmentService.History(user.ID, limit)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load assessments")
	}
	return c.JSON(assessments)
}

func (handler *Handler) GetLatestAssessment(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	assessment, err := handler.assessmentService.Latest(user.ID)
	if errors.Is(err, services.ErrAssessmentNotFound) {
		return apiError(c, fiber.StatusNotFound, "no assessment yet")
	}
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load assessment")
	}
	return c.JSON(assessment)
}
