package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)

	profile := api.Group("/profile", handler.AuthRequired)
	profile.Get("", handler.GetProfile)
	profile.Put("", handler.UpdateProfile)

	periods := api.Group("/periods", handler.AuthRequired)
	periods.Get("", handler.ListPeriods)
	periods.Post("", handler.CreatePeriod)
	periods.Put("/:id", handler.UpdatePeriod)
	periods.Delete("/:id", handler.DeletePeriod)

	wellness := api.Group("/wellness", handler.AuthRequired)
	wellness.Get("/logs", handler.ListWellnessLogs)
	wellness.Post("/logs", handler.LogWellness)
	wellness.Get("/symptoms", handler.ListSymptoms)
	wellness.Post("/symptoms", handler.LogSymptom)
	wellness.Get("/moods", handler.ListMoods)
	wellness.Post("/moods", handler.LogMood)
	wellness.Get("/tip", handler.GetWellnessTip)

	analytics := api.Group("/analytics", handler.AuthRequired)
	analytics.Get("/cycle-consistency", handler.GetCycleConsistency)
	analytics.Get("/symptom-frequency", handler.GetSymptomFrequency)
	analytics.Get("/mood-trends", handler.GetMoodTrends)
	analytics.Get("/wellness-score", handler.GetWellnessScore)
	analytics.Get("/dashboard", handler.GetDashboard)

	predictions := api.Group("/predictions", handler.AuthRequired)
	predictions.Get("/next-cycle", handler.GetNextCyclePrediction)

	notifications := api.Group("/notifications", handler.AuthRequired)
	notifications.Get("", handler.ListNotifications)
	notifications.Post("/:id/read", handler.MarkNotificationRead)
}
