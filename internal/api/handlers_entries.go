package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/mindguard/internal/models"
	"github.com/terraincognita07/mindguard/internal/services"
	"go.uber.org/zap"
)

type entryPayload struct {
	OverallMood        int            `json:"overallMood" validate:"required,min=1,max=10"`
	Energy             int            `json:"energy" validate:"required,min=1,max=10"`
	Sleep              int            `json:"sleep" validate:"required,min=1,max=10"`
	DepressiveSymptoms map[string]int `json:"depressiveSymptoms" validate:"dive,min=0,max=3"`
	AnxietySymptoms    map[string]int `json:"anxietySymptoms" validate:"dive,min=0,max=3"`
	StressIndicators   map[string]int `json:"stressIndicators" validate:"dive,min=0,max=3"`
	Activities         []string       `json:"activities" validate:"max=20,dive,max=64"`
	Triggers           []string       `json:"triggers" validate:"max=20,dive,max=64"`
	CopingStrategies   []string       `json:"copingStrategies" validate:"max=20,dive,max=64"`
	Notes              string         `json:"notes" validate:"max=2000"`
}

func (payload entryPayload) input() services.EntryInput {
	return services.EntryInput{
		OverallMood:        payload.OverallMood,
		Energy:             payload.Energy,
		Sleep:              payload.Sleep,
		DepressiveSymptoms: payload.DepressiveSymptoms,
		AnxietySymptoms:    payload.AnxietySymptoms,
		StressIndicators:   payload.StressIndicators,
		Activities:         payload.Activities,
		Triggers:           payload.Triggers,
		CopingStrategies:   payload.CopingStrategies,
		Notes:              payload.Notes,
	}
}

type entryView struct {
	Date               string         `json:"date"`
	OverallMood        int            `json:"overallMood"`
	Energy             int            `json:"energy"`
	Sleep              int            `json:"sleep"`
	DepressiveSymptoms map[string]int `json:"depressiveSymptoms"`
	AnxietySymptoms    map[string]int `json:"anxietySymptoms"`
	StressIndicators   map[string]int `json:"stressIndicators"`
	Activities         []string       `json:"activities"`
	Triggers           []string       `json:"triggers"`
	CopingStrategies   []string       `json:"copingStrategies"`
	Notes              string         `json:"notes"`
	UpdatedAt          string         `json:"updatedAt,omitempty"`
}

func (handler *Handler) entryView(entry models.MoodEntry) entryView {
	view := entryView{
		Date:               services.FormatDay(entry.Date, handler.location),
		OverallMood:        entry.OverallMood,
		Energy:             entry.Energy,
		Sleep:              entry.Sleep,
		DepressiveSymptoms: nonNilSeverities(entry.DepressiveSymptoms),
		AnxietySymptoms:    nonNilSeverities(entry.AnxietySymptoms),
		StressIndicators:   nonNilSeverities(entry.StressIndicators),
		Activities:         nonNilLabels(entry.Activities),
		Triggers:           nonNilLabels(entry.Triggers),
		CopingStrategies:   nonNilLabels(entry.CopingStrategies),
		Notes:              entry.Notes,
	}
	if !entry.UpdatedAt.IsZero() {
		view.UpdatedAt = entry.UpdatedAt.UTC().Format(time.RFC3339)
	}
	return view
}

func nonNilSeverities(values map[string]int) map[string]int {
	if values == nil {
		return map[string]int{}
	}
	return values
}

func nonNilLabels(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

func (handler *Handler) ListEntries(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	from, to, err := services.ParseDateRange(c.Query("from"), c.Query("to"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, dateRangeErrorMessage(err))
	}

	entries, err := handler.entryService.ListEntries(user.ID, from, to, handler.location)
	if err != nil {
		return handler.entryFailure(c, err)
	}

	views := make([]entryView, 0, len(entries))
	for _, entry := range entries {
		views = append(views, handler.entryView(entry))
	}
	return c.JSON(views)
}

func (handler *Handler) GetEntry(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	day, err := services.ParseDay(c.Params("date"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	entry, err := handler.entryService.FetchEntry(user.ID, day, handler.location)
	if err != nil {
		return handler.entryFailure(c, err)
	}
	return c.JSON(handler.entryView(entry))
}

func (handler *Handler) UpsertEntry(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	day, err := services.ParseDay(c.Params("date"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	payload := entryPayload{}
	if message := parseAndValidate(c, &payload); message != "" {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	entry, created, err := handler.entryService.UpsertEntry(user.ID, day, payload.input(), handler.location)
	if err != nil {
		return handler.entryFailure(c, err)
	}

	status := fiber.StatusOK
	if created {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(handler.entryView(entry))
}

func (handler *Handler) DeleteEntry(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	day, err := services.ParseDay(c.Params("date"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	if err := handler.entryService.DeleteEntry(user.ID, day, handler.location); err != nil {
		return handler.entryFailure(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) entryFailure(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrEntryNotFound):
		return apiError(c, fiber.StatusNotFound, "entry not found")
	case errors.Is(err, services.ErrEntryInFuture):
		return apiError(c, fiber.StatusBadRequest, "entry date is in the future")
	case errors.Is(err, services.ErrUnknownIndicator):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrInvalidEntryDate), errors.Is(err, services.ErrEntryRangeInvalid):
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	default:
		handler.logger.Error("entry operation failed", zap.String("request_id", requestID(c)), zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "failed to process entry")
	}
}

func dateRangeErrorMessage(err error) string {
	switch {
	case errors.Is(err, services.ErrExportFromDateInvalid):
		return "invalid from date"
	case errors.Is(err, services.ErrExportToDateInvalid):
		return "invalid to date"
	default:
		return "invalid range"
	}
}
