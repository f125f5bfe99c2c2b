package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) GetNextCyclePrediction(c *fiber.Ctx) error {
	prediction, err := handler.predictions.PredictNextCycle(c.Context(), currentUser(c), handler.today())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build prediction")
	}
	return c.JSON(prediction)
}
