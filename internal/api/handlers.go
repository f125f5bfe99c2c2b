package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/reddot-health/reddot/internal/models"
	"github.com/reddot-health/reddot/internal/services"
)

const defaultAuthTokenTTL = 7 * 24 * time.Hour

type Handler struct {
	secretKey     []byte
	location      *time.Location
	auth          *services.AuthService
	periods       *services.PeriodService
	wellness      *services.WellnessService
	analytics     *services.AnalyticsService
	predictions   *services.PredictionService
	notifications NotificationReader
}

type NotificationReader interface {
	ListByUserDesc(userID uint) ([]models.Notification, error)
	MarkRead(notificationID uint, userID uint) error
}

type HandlerConfig struct {
	SecretKey     string
	Location      *time.Location
	Auth          *services.AuthService
	Periods       *services.PeriodService
	Wellness      *services.WellnessService
	Analytics     *services.AnalyticsService
	Predictions   *services.PredictionService
	Notifications NotificationReader
}

func NewHandler(config HandlerConfig) *Handler {
	location := config.Location
	if location == nil {
		location = time.UTC
	}
	return &Handler{
		secretKey:     []byte(config.SecretKey),
		location:      location,
		auth:          config.Auth,
		periods:       config.Periods,
		wellness:      config.Wellness,
		analytics:     config.Analytics,
		predictions:   config.Predictions,
		notifications: config.Notifications,
	}
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (handler *Handler) today() time.Time {
	now := time.Now().In(handler.location)
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}
