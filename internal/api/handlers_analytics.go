package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) GetCycleConsistency(c *fiber.Ctx) error {
	report, err := handler.analytics.CycleConsistencyForUser(currentUser(c))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build cycle consistency")
	}
	return c.JSON(report)
}

func (handler *Handler) GetSymptomFrequency(c *fiber.Ctx) error {
	report, err := handler.analytics.SymptomFrequencyForUser(currentUser(c))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build symptom frequency")
	}
	return c.JSON(report)
}

func (handler *Handler) GetMoodTrends(c *fiber.Ctx) error {
	report, err := handler.analytics.MoodTrendsForUser(currentUser(c))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build mood trends")
	}
	return c.JSON(report)
}

func (handler *Handler) GetWellnessScore(c *fiber.Ctx) error {
	report, err := handler.analytics.WellnessScoreForUser(currentUser(c), handler.today())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build wellness score")
	}
	return c.JSON(report)
}

func (handler *Handler) GetDashboard(c *fiber.Ctx) error {
	report, err := handler.analytics.DashboardForUser(currentUser(c), handler.today())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build dashboard")
	}
	return c.JSON(report)
}
