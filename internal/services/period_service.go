package services

import (
	"errors"

	"github.com/reddot-health/reddot/internal/models"
)

var (
	ErrPeriodNotFound         = errors.New("period not found")
	ErrInvalidPeriodRange     = errors.New("end date must not be before start date")
	ErrInvalidPainLevel       = errors.New("pain level must be between 0 and 10")
	ErrInvalidFlowIntensity   = errors.New("invalid flow intensity")
	ErrMissingPeriodStartDate = errors.New("start date is required")
)

type PeriodStore interface {
	ListByUserDesc(userID uint) ([]models.Period, error)
	FindByIDForUser(periodID uint, userID uint) (models.Period, error)
	Create(period *models.Period) error
	Save(period *models.Period) error
	Delete(period *models.Period) error
}

type PeriodUserStore interface {
	UpdateProfile(userID uint, updates map[string]any) error
}

type PeriodService struct {
	periods PeriodStore
	users   PeriodUserStore
}

func NewPeriodService(periods PeriodStore, users PeriodUserStore) *PeriodService {
	return &PeriodService{periods: periods, users: users}
}

// ValidatePeriodRecord rejects malformed records at the boundary so the
// analytics and prediction paths stay total over stored data.
func ValidatePeriodRecord(period *models.Period) error {
	if period.StartDate.IsZero() {
		return ErrMissingPeriodStartDate
	}
	if period.EndDate != nil && dateOnly(*period.EndDate).Before(dateOnly(period.StartDate)) {
		return ErrInvalidPeriodRange
	}
	if period.PainLevel != nil && (*period.PainLevel < 0 || *period.PainLevel > 10) {
		return ErrInvalidPainLevel
	}
	if !models.IsValidFlowIntensity(period.FlowIntensity) {
		return ErrInvalidFlowIntensity
	}
	return nil
}

// LogPeriod stores a validated record and moves the user's declared last
// period start forward to the new record's start date.
func (service *PeriodService) LogPeriod(user *models.User, period *models.Period) error {
	if err := ValidatePeriodRecord(period); err != nil {
		return err
	}

	period.UserID = user.ID
	period.StartDate = dateOnly(period.StartDate)
	if period.EndDate != nil {
		normalized := dateOnly(*period.EndDate)
		period.EndDate = &normalized
	}

	if err := service.periods.Create(period); err != nil {
		return err
	}

	return service.users.UpdateProfile(user.ID, map[string]any{
		"last_period_start": period.StartDate,
	})
}

func (service *PeriodService) ListPeriods(user *models.User) ([]models.Period, error) {
	return service.periods.ListByUserDesc(user.ID)
}

func (service *PeriodService) UpdatePeriod(user *models.User, periodID uint, updated *models.Period) (models.Period, error) {
	existing, err := service.periods.FindByIDForUser(periodID, user.ID)
	if err != nil {
		return models.Period{}, ErrPeriodNotFound
	}

	existing.StartDate = updated.StartDate
	existing.EndDate = updated.EndDate
	existing.FlowIntensity = updated.FlowIntensity
	existing.PainLevel = updated.PainLevel
	existing.Notes = updated.Notes

	if err := ValidatePeriodRecord(&existing); err != nil {
		return models.Period{}, err
	}

	existing.StartDate = dateOnly(existing.StartDate)
	if existing.EndDate != nil {
		normalized := dateOnly(*existing.EndDate)
		existing.EndDate = &normalized
	}

	if err := service.periods.Save(&existing); err != nil {
		return models.Period{}, err
	}
	return existing, nil
}

func (service *PeriodService) DeletePeriod(user *models.User, periodID uint) error {
	existing, err := service.periods.FindByIDForUser(periodID, user.ID)
	if err != nil {
		return ErrPeriodNotFound
	}
	return service.periods.Delete(&existing)
}
