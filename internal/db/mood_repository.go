package db

import (
	"time"

	"github.com/reddot-health/reddot/internal/models"
	"gorm.io/gorm"
)

type MoodRepository struct {
	database *gorm.DB
}

func NewMoodRepository(database *gorm.DB) *MoodRepository {
	return &MoodRepository{database: database}
}

func (repo *MoodRepository) ListByUserDesc(userID uint) ([]models.Mood, error) {
	moods := make([]models.Mood, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("date DESC, id DESC").
		Find(&moods).Error; err != nil {
		return nil, err
	}
	return moods, nil
}

func (repo *MoodRepository) ListByUserRange(userID uint, from time.Time, to time.Time) ([]models.Mood, error) {
	moods := make([]models.Mood, 0)
	if err := repo.database.
		Where("user_id = ? AND date >= ? AND date <= ?", userID, from, to).
		Order("date DESC, id DESC").
		Find(&moods).Error; err != nil {
		return nil, err
	}
	return moods, nil
}

func (repo *MoodRepository) Create(mood *models.Mood) error {
	return repo.database.Create(mood).Error
}
