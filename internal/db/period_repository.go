package db

import (
	"github.com/reddot-health/reddot/internal/models"
	"gorm.io/gorm"
)

type PeriodRepository struct {
	database *gorm.DB
}

func NewPeriodRepository(database *gorm.DB) *PeriodRepository {
	return &PeriodRepository{database: database}
}

// ListByUserDesc returns a user's period records ordered by start date
// descending, matching how the prediction path consumes them.
func (repo *PeriodRepository) ListByUserDesc(userID uint) ([]models.Period, error) {
	periods := make([]models.Period, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("start_date DESC, id DESC").
		Find(&periods).Error; err != nil {
		return nil, err
	}
	return periods, nil
}

func (repo *PeriodRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Period{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *PeriodRepository) FindByIDForUser(periodID uint, userID uint) (models.Period, error) {
	var period models.Period
	if err := repo.database.
		Where("id = ? AND user_id = ?", periodID, userID).
		First(&period).Error; err != nil {
		return models.Period{}, err
	}
	return period, nil
}

func (repo *PeriodRepository) Create(period *models.Period) error {
	return repo.database.Create(period).Error
}

func (repo *PeriodRepository) Save(period *models.Period) error {
	return repo.database.Save(period).Error
}

func (repo *PeriodRepository) Delete(period *models.Period) error {
	return repo.database.Delete(period).Error
}
