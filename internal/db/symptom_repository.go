package db

import (
	"time"

	"github.com/reddot-health/reddot/internal/models"
	"gorm.io/gorm"
)

type SymptomRepository struct {
	database *gorm.DB
}

func NewSymptomRepository(database *gorm.DB) *SymptomRepository {
	return &SymptomRepository{database: database}
}

func (repo *SymptomRepository) ListByUserDesc(userID uint) ([]models.Symptom, error) {
	symptoms := make([]models.Symptom, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("date DESC, id DESC").
		Find(&symptoms).Error; err != nil {
		return nil, err
	}
	return symptoms, nil
}

func (repo *SymptomRepository) ListByUserRange(userID uint, from time.Time, to time.Time) ([]models.Symptom, error) {
	symptoms := make([]models.Symptom, 0)
	if err := repo.database.
		Where("user_id = ? AND date >= ? AND date <= ?", userID, from, to).
		Order("date DESC, id DESC").
		Find(&symptoms).Error; err != nil {
		return nil, err
	}
	return symptoms, nil
}

func (repo *SymptomRepository) Create(symptom *models.Symptom) error {
	return repo.database.Create(symptom).Error
}
