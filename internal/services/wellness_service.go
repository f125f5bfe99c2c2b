package services

import (
	"errors"
	"math/rand"
	"time"

	"github.com/reddot-health/reddot/internal/models"
)

var (
	ErrInvalidSeverity     = errors.New("severity must be between 1 and 5")
	ErrInvalidIntensity    = errors.New("intensity must be between 1 and 5")
	ErrInvalidSleepQuality = errors.New("sleep quality must be between 1 and 5")
	ErrInvalidMoodType     = errors.New("invalid mood type")
	ErrMissingSymptomType  = errors.New("symptom type is required")
)

var wellnessTips = []string{
	"Stay hydrated! Aim for 8-10 glasses of water daily.",
	"Get 7-9 hours of quality sleep each night.",
	"Light exercise like walking can help with period cramps.",
	"Eat iron-rich foods during your period to combat fatigue.",
	"Practice deep breathing exercises to manage stress.",
	"Magnesium-rich foods can help reduce bloating.",
	"Yoga and stretching can ease menstrual discomfort.",
	"Limit caffeine intake if you experience breast tenderness.",
	"Track your symptoms to identify patterns.",
	"Remember, it's normal for cycles to vary slightly.",
}

type WellnessLogStore interface {
	ListByUserDesc(userID uint) ([]models.WellnessLog, error)
	ListByUserRange(userID uint, from time.Time, to time.Time) ([]models.WellnessLog, error)
	Create(entry *models.WellnessLog) error
}

type SymptomStore interface {
	ListByUserDesc(userID uint) ([]models.Symptom, error)
	ListByUserRange(userID uint, from time.Time, to time.Time) ([]models.Symptom, error)
	Create(symptom *models.Symptom) error
}

type MoodStore interface {
	ListByUserDesc(userID uint) ([]models.Mood, error)
	ListByUserRange(userID uint, from time.Time, to time.Time) ([]models.Mood, error)
	Create(mood *models.Mood) error
}

type WellnessService struct {
	wellness WellnessLogStore
	symptoms SymptomStore
	moods    MoodStore
	rng      *rand.Rand
}

// NewWellnessService takes an explicit random source so tip selection stays
// reproducible in tests.
func NewWellnessService(wellness WellnessLogStore, symptoms SymptomStore, moods MoodStore, rng *rand.Rand) *WellnessService {
	return &WellnessService{
		wellness: wellness,
		symptoms: symptoms,
		moods:    moods,
		rng:      rng,
	}
}

func (service *WellnessService) LogWellness(user *models.User, entry *models.WellnessLog, today time.Time) error {
	if entry.SleepQuality != nil && (*entry.SleepQuality < 1 || *entry.SleepQuality > 5) {
		return ErrInvalidSleepQuality
	}

	entry.UserID = user.ID
	if entry.Date.IsZero() {
		entry.Date = dateOnly(today)
	} else {
		entry.Date = dateOnly(entry.Date)
	}
	return service.wellness.Create(entry)
}

func (service *WellnessService) LogSymptom(user *models.User, symptom *models.Symptom, today time.Time) error {
	if symptom.SymptomType == "" {
		return ErrMissingSymptomType
	}
	if symptom.Severity != nil && (*symptom.Severity < 1 || *symptom.Severity > 5) {
		return ErrInvalidSeverity
	}

	symptom.UserID = user.ID
	if symptom.Date.IsZero() {
		symptom.Date = dateOnly(today)
	} else {
		symptom.Date = dateOnly(symptom.Date)
	}
	return service.symptoms.Create(symptom)
}

func (service *WellnessService) LogMood(user *models.User, mood *models.Mood, today time.Time) error {
	if !models.IsValidMoodType(mood.MoodType) {
		return ErrInvalidMoodType
	}
	if mood.Intensity != nil && (*mood.Intensity < 1 || *mood.Intensity > 5) {
		return ErrInvalidIntensity
	}

	mood.UserID = user.ID
	if mood.Date.IsZero() {
		mood.Date = dateOnly(today)
	} else {
		mood.Date = dateOnly(mood.Date)
	}
	return service.moods.Create(mood)
}

func (service *WellnessService) ListWellnessLogs(user *models.User, from *time.Time, to *time.Time) ([]models.WellnessLog, error) {
	if from != nil && to != nil {
		return service.wellness.ListByUserRange(user.ID, dateOnly(*from), dateOnly(*to))
	}
	return service.wellness.ListByUserDesc(user.ID)
}

func (service *WellnessService) ListSymptoms(user *models.User, from *time.Time, to *time.Time) ([]models.Symptom, error) {
	if from != nil && to != nil {
		return service.symptoms.ListByUserRange(user.ID, dateOnly(*from), dateOnly(*to))
	}
	return service.symptoms.ListByUserDesc(user.ID)
}

func (service *WellnessService) ListMoods(user *models.User, from *time.Time, to *time.Time) ([]models.Mood, error) {
	if from != nil && to != nil {
		return service.moods.ListByUserRange(user.ID, dateOnly(*from), dateOnly(*to))
	}
	return service.moods.ListByUserDesc(user.ID)
}

func (service *WellnessService) WellnessTip() string {
	if service.rng == nil {
		return wellnessTips[0]
	}
	return wellnessTips[service.rng.Intn(len(wellnessTips))]
}
