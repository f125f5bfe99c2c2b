package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) ListNotifications(c *fiber.Ctx) error {
	notifications, err := handler.notifications.ListByUserDesc(currentUser(c).ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load notifications")
	}
	return c.JSON(notifications)
}

func (handler *Handler) MarkNotificationRead(c *fiber.Ctx) error {
	notificationID, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid notification id")
	}

	if err := handler.notifications.MarkRead(notificationID, currentUser(c).ID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to mark notification read")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
