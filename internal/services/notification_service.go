package services

import (
	"context"
	"fmt"
	"time"

	"github.com/reddot-health/reddot/internal/models"
	"github.com/sirupsen/logrus"
)

type NotificationUserReader interface {
	ListAll() ([]models.User, error)
}

type NotificationWriter interface {
	ExistsForUserTypeAndDueDate(userID uint, notificationType string, dueDate time.Time) (bool, error)
	Create(notification *models.Notification) error
}

type NotificationService struct {
	users              NotificationUserReader
	notifications      NotificationWriter
	predictions        *PredictionService
	periodReminderDays int
	sweepInterval      time.Duration
}

func NewNotificationService(users NotificationUserReader, notifications NotificationWriter, predictions *PredictionService, periodReminderDays int, sweepInterval time.Duration) *NotificationService {
	if periodReminderDays < 0 {
		periodReminderDays = 2
	}
	if sweepInterval <= 0 {
		sweepInterval = 6 * time.Hour
	}
	return &NotificationService{
		users:              users,
		notifications:      notifications,
		predictions:        predictions,
		periodReminderDays: periodReminderDays,
		sweepInterval:      sweepInterval,
	}
}

// Start runs the reminder sweep until the context is cancelled.
func (service *NotificationService) Start(ctx context.Context) {
	ticker := time.NewTicker(service.sweepInterval)
	go func() {
		defer ticker.Stop()

		service.Sweep(ctx, time.Now())
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				service.Sweep(ctx, time.Now())
			}
		}
	}()
}

// Sweep predicts the next cycle for every user and records upcoming-period
// and fertile-window notifications, skipping duplicates per due date.
func (service *NotificationService) Sweep(ctx context.Context, now time.Time) {
	users, err := service.users.ListAll()
	if err != nil {
		logrus.WithError(err).Error("notification sweep: list users failed")
		return
	}

	today := dateOnly(now)
	for index := range users {
		user := users[index]
		prediction, err := service.predictions.PredictNextCycle(ctx, &user, today)
		if err != nil {
			logrus.WithError(err).WithField("user_id", user.ID).Error("notification sweep: prediction failed")
			continue
		}

		daysUntilPeriod := daysBetween(today, prediction.PredictedPeriodStart)
		if daysUntilPeriod == service.periodReminderDays {
			message := fmt.Sprintf("Your predicted period starts in %d day(s) on %s.",
				daysUntilPeriod, prediction.PredictedPeriodStart.Format("Jan 2"))
			service.record(&user, models.NotificationPeriodReminder, message, prediction.PredictedPeriodStart)
		}

		if prediction.FertileWindowStart != nil && sameDay(today, *prediction.FertileWindowStart) {
			message := fmt.Sprintf("Your fertile window starts today (%s).",
				prediction.FertileWindowStart.Format("Jan 2"))
			service.record(&user, models.NotificationFertilityWindow, message, *prediction.FertileWindowStart)
		}
	}
}

func (service *NotificationService) record(user *models.User, notificationType string, message string, dueDate time.Time) {
	exists, err := service.notifications.ExistsForUserTypeAndDueDate(user.ID, notificationType, dueDate)
	if err != nil {
		logrus.WithError(err).WithField("user_id", user.ID).Error("notification sweep: dedup check failed")
		return
	}
	if exists {
		return
	}

	notification := models.Notification{
		UserID:  user.ID,
		Type:    notificationType,
		Message: message,
		DueDate: dueDate,
	}
	if err := service.notifications.Create(&notification); err != nil {
		logrus.WithError(err).WithField("user_id", user.ID).Error("notification sweep: create failed")
	}
}
