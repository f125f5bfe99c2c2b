package db

import (
	"time"

	"github.com/reddot-health/reddot/internal/models"
	"gorm.io/gorm"
)

type WellnessLogRepository struct {
	database *gorm.DB
}

func NewWellnessLogRepository(database *gorm.DB) *WellnessLogRepository {
	return &WellnessLogRepository{database: database}
}

func (repo *WellnessLogRepository) ListByUserDesc(userID uint) ([]models.WellnessLog, error) {
	logs := make([]models.WellnessLog, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("date DESC, id DESC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *WellnessLogRepository) ListByUserRange(userID uint, from time.Time, to time.Time) ([]models.WellnessLog, error) {
	logs := make([]models.WellnessLog, 0)
	if err := repo.database.
		Where("user_id = ? AND date >= ? AND date <= ?", userID, from, to).
		Order("date DESC, id DESC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *WellnessLogRepository) Create(entry *models.WellnessLog) error {
	return repo.database.Create(entry).Error
}
