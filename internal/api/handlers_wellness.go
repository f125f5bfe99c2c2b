package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/reddot-health/reddot/internal/models"
	"github.com/reddot-health/reddot/internal/services"
)

type wellnessLogInput struct {
	Date            string `json:"date"`
	WaterIntake     *int   `json:"water_intake"`
	SleepHours      *int   `json:"sleep_hours"`
	SleepQuality    *int   `json:"sleep_quality"`
	ExerciseMinutes *int   `json:"exercise_minutes"`
	ExerciseType    string `json:"exercise_type"`
	Notes           string `json:"notes"`
}

func (handler *Handler) LogWellness(c *fiber.Ctx) error {
	var input wellnessLogInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	date, err := parseDateParam(input.Date)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	entry := models.WellnessLog{
		WaterIntake:     input.WaterIntake,
		SleepHours:      input.SleepHours,
		SleepQuality:    input.SleepQuality,
		ExerciseMinutes: input.ExerciseMinutes,
		ExerciseType:    input.ExerciseType,
		Notes:           input.Notes,
	}
	if date != nil {
		entry.Date = *date
	}

	if err := handler.wellness.LogWellness(currentUser(c), &entry, handler.today()); err != nil {
		return respondWellnessError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

func (handler *Handler) ListWellnessLogs(c *fiber.Ctx) error {
	from, to, err := parseRangeQuery(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date range")
	}

	logs, err := handler.wellness.ListWellnessLogs(currentUser(c), from, to)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load wellness logs")
	}
	return c.JSON(logs)
}

type symptomInput struct {
	Date        string `json:"date"`
	SymptomType string `json:"symptom_type"`
	Severity    *int   `json:"severity"`
	Notes       string `json:"notes"`
}

func (handler *Handler) LogSymptom(c *fiber.Ctx) error {
	var input symptomInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	date, err := parseDateParam(input.Date)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	symptom := models.Symptom{
		SymptomType: input.SymptomType,
		Severity:    input.Severity,
		Notes:       input.Notes,
	}
	if date != nil {
		symptom.Date = *date
	}

	if err := handler.wellness.LogSymptom(currentUser(c), &symptom, handler.today()); err != nil {
		return respondWellnessError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(symptom)
}

func (handler *Handler) ListSymptoms(c *fiber.Ctx) error {
	from, to, err := parseRangeQuery(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date range")
	}

	symptoms, err := handler.wellness.ListSymptoms(currentUser(c), from, to)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load symptoms")
	}
	return c.JSON(symptoms)
}

type moodInput struct {
	Date      string `json:"date"`
	MoodType  string `json:"mood_type"`
	Intensity *int   `json:"intensity"`
	Notes     string `json:"notes"`
}

func (handler *Handler) LogMood(c *fiber.Ctx) error {
	var input moodInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	date, err := parseDateParam(input.Date)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	mood := models.Mood{
		MoodType:  input.MoodType,
		Intensity: input.Intensity,
		Notes:     input.Notes,
	}
	if date != nil {
		mood.Date = *date
	}

	if err := handler.wellness.LogMood(currentUser(c), &mood, handler.today()); err != nil {
		return respondWellnessError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(mood)
}

func (handler *Handler) ListMoods(c *fiber.Ctx) error {
	from, to, err := parseRangeQuery(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date range")
	}

	moods, err := handler.wellness.ListMoods(currentUser(c), from, to)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load moods")
	}
	return c.JSON(moods)
}

func (handler *Handler) GetWellnessTip(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"tip": handler.wellness.WellnessTip()})
}

func respondWellnessError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidSeverity),
		errors.Is(err, services.ErrInvalidIntensity),
		errors.Is(err, services.ErrInvalidSleepQuality),
		errors.Is(err, services.ErrInvalidMoodType),
		errors.Is(err, services.ErrMissingSymptomType):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	default:
		return apiError(c, fiber.StatusInternalServerError, "failed to save entry")
	}
}

func parseRangeQuery(c *fiber.Ctx) (*time.Time, *time.Time, error) {
	from, err := parseDateParam(c.Query("start_date"))
	if err != nil {
		return nil, nil, err
	}
	to, err := parseDateParam(c.Query("end_date"))
	if err != nil {
		return nil, nil, err
	}
	return from, to, nil
}
