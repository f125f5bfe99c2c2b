package db

import (
	"time"

	"github.com/reddot-health/reddot/internal/models"
	"gorm.io/gorm"
)

type NotificationRepository struct {
	database *gorm.DB
}

func NewNotificationRepository(database *gorm.DB) *NotificationRepository {
	return &NotificationRepository{database: database}
}

func (repo *NotificationRepository) ListByUserDesc(userID uint) ([]models.Notification, error) {
	notifications := make([]models.Notification, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}

func (repo *NotificationRepository) ExistsForUserTypeAndDueDate(userID uint, notificationType string, dueDate time.Time) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.Notification{}).
		Where("user_id = ? AND type = ? AND due_date = ?", userID, notificationType, dueDate).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *NotificationRepository) Create(notification *models.Notification) error {
	return repo.database.Create(notification).Error
}

func (repo *NotificationRepository) MarkRead(notificationID uint, userID uint) error {
	return repo.database.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", notificationID, userID).
		Update("read", true).Error
}
