package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	registerAPIRoutes(app, handler)
}

func registerAPIRoutes(app *fiber.App, handler *Handler) {
	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Get("/me", handler.AuthRequired, handler.Me)

	entries := api.Group("/entries", handler.AuthRequired)
	entries.Get("", handler.ListEntries)
	entries.Get("/export.csv", handler.ExportCSV)
	entries.Get("/export/summary", handler.ExportSummary)
	entries.Get("/:date", handler.GetEntry)
	entries.Put("/:date", handler.UpsertEntry)
	entries.Delete("/:date", handler.DeleteEntry)

	api.Get("/analysis", handler.AuthRequired, handler.GetAnalysis)

	assessment := api.Group("/assessment", handler.AuthRequired)
	assessment.Get("/questions", handler.GetAssessmentQuestions)
	assessment.Post("", handler.SubmitAssessment)
	assessment.Get("/history", handler.GetAssessmentHistory)
	assessment.Get("/latest", handler.GetLatestAssessment)

	settings := api.Group("/settings", handler.AuthRequired)
	settings.Put("/counselor", handler.AssignCounselor)
	settings.Delete("/counselor", handler.RevokeCounselor)
	settings.Patch("/profile", handler.UpdateProfile)
	settings.Post("/change-password", handler.ChangePassword)

	api.Delete("/account", handler.AuthRequired, handler.DeleteAccount)

	counselor := api.Group("/counselor", handler.AuthRequired, handler.CounselorOnly)
	counselor.Get("/members", handler.ListMembers)
	counselor.Get("/members/:id/analysis", handler.GetMemberAnalysis)
}
