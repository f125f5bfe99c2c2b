package api

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/reddot-health/reddot/internal/models"
	"github.com/reddot-health/reddot/internal/services"
)

type periodInput struct {
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	FlowIntensity string `json:"flow_intensity"`
	PainLevel     *int   `json:"pain_level"`
	Notes         string `json:"notes"`
}

func (input periodInput) toPeriod() (models.Period, error) {
	start, err := parseDateParam(input.StartDate)
	if err != nil || start == nil {
		return models.Period{}, errors.New("invalid start date")
	}

	end, err := parseDateParam(input.EndDate)
	if err != nil {
		return models.Period{}, errors.New("invalid end date")
	}

	return models.Period{
		StartDate:     *start,
		EndDate:       end,
		FlowIntensity: input.FlowIntensity,
		PainLevel:     input.PainLevel,
		Notes:         input.Notes,
	}, nil
}

func (handler *Handler) CreatePeriod(c *fiber.Ctx) error {
	var input periodInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	period, err := input.toPeriod()
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := handler.periods.LogPeriod(currentUser(c), &period); err != nil {
		return respondPeriodError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(period)
}

func (handler *Handler) ListPeriods(c *fiber.Ctx) error {
	periods, err := handler.periods.ListPeriods(currentUser(c))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load periods")
	}
	return c.JSON(periods)
}

func (handler *Handler) UpdatePeriod(c *fiber.Ctx) error {
	periodID, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid period id")
	}

	var input periodInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	period, err := input.toPeriod()
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	updated, err := handler.periods.UpdatePeriod(currentUser(c), periodID, &period)
	if err != nil {
		return respondPeriodError(c, err)
	}
	return c.JSON(updated)
}

func (handler *Handler) DeletePeriod(c *fiber.Ctx) error {
	periodID, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid period id")
	}

	if err := handler.periods.DeletePeriod(currentUser(c), periodID); err != nil {
		return respondPeriodError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func respondPeriodError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrPeriodNotFound):
		return apiError(c, fiber.StatusNotFound, "period not found")
	case errors.Is(err, services.ErrInvalidPeriodRange),
		errors.Is(err, services.ErrInvalidPainLevel),
		errors.Is(err, services.ErrInvalidFlowIntensity),
		errors.Is(err, services.ErrMissingPeriodStartDate):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	default:
		return apiError(c, fiber.StatusInternalServerError, "failed to save period")
	}
}

func parseIDParam(c *fiber.Ctx) (uint, error) {
	raw, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(raw), nil
}

// parseDateParam treats an empty string as absent rather than invalid.
func parseDateParam(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
