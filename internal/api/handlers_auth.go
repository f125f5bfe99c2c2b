package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/reddot-health/reddot/internal/services"
)

type credentialsInput struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func (handler *Handler) Register(c *fiber.Ctx) error {
	var input credentialsInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	user, err := handler.auth.Register(input.Email, input.Password, input.FirstName, input.LastName)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmailTaken):
			return apiError(c, fiber.StatusConflict, "email already exists")
		case errors.Is(err, services.ErrWeakPassword), errors.Is(err, services.ErrInvalidCredentials):
			return apiError(c, fiber.StatusBadRequest, err.Error())
		default:
			return apiError(c, fiber.StatusInternalServerError, "failed to create account")
		}
	}

	token, err := handler.buildToken(&user, defaultAuthTokenTTL)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"token": token, "user": user})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	var input credentialsInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	user, err := handler.auth.Authenticate(input.Email, input.Password)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	}

	token, err := handler.buildToken(&user, defaultAuthTokenTTL)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	return c.JSON(fiber.Map{"token": token, "user": user})
}

type profileInput struct {
	FirstName           *string `json:"first_name"`
	LastName            *string `json:"last_name"`
	AverageCycleLength  *int    `json:"average_cycle_length"`
	AveragePeriodLength *int    `json:"average_period_length"`
	LastPeriodStart     *string `json:"last_period_start"`
}

func (handler *Handler) GetProfile(c *fiber.Ctx) error {
	return c.JSON(currentUser(c))
}

func (handler *Handler) UpdateProfile(c *fiber.Ctx) error {
	user := currentUser(c)

	var input profileInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.AverageCycleLength != nil {
		if *input.AverageCycleLength < 1 {
			return apiError(c, fiber.StatusBadRequest, "invalid average cycle length")
		}
		user.AverageCycleLength = input.AverageCycleLength
	}
	if input.AveragePeriodLength != nil {
		if *input.AveragePeriodLength < 1 {
			return apiError(c, fiber.StatusBadRequest, "invalid average period length")
		}
		user.AveragePeriodLength = input.AveragePeriodLength
	}
	if input.LastPeriodStart != nil {
		parsed, err := parseDateParam(*input.LastPeriodStart)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid last period start")
		}
		user.LastPeriodStart = parsed
	}

	if err := handler.auth.SaveUser(user); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update profile")
	}
	return c.JSON(user)
}
