package services

import (
	"math"
	"time"

	"github.com/reddot-health/reddot/internal/models"
)

const (
	WellnessLevelExcellent        = "excellent"
	WellnessLevelGood             = "good"
	WellnessLevelFair             = "fair"
	WellnessLevelNeedsImprovement = "needs_improvement"
)

const wellnessWindowDays = 30

type SymptomFrequencyReport struct {
	Frequency      map[string]int `json:"frequency"`
	TotalSymptoms  int            `json:"total_symptoms"`
	UniqueSymptoms int            `json:"unique_symptoms"`
}

type MoodTrendReport struct {
	MoodDistribution map[string]int `json:"mood_distribution"`
	TotalMoods       int            `json:"total_moods"`
	AverageIntensity float64        `json:"average_intensity"`
}

type WellnessScoreReport struct {
	Score     int    `json:"score"`
	Level     string `json:"level"`
	LogsCount int    `json:"logs_count"`
}

type DashboardReport struct {
	CycleConsistency CycleConsistencyReport `json:"cycle_consistency"`
	SymptomFrequency SymptomFrequencyReport `json:"symptom_frequency"`
	MoodTrends       MoodTrendReport        `json:"mood_trends"`
	WellnessScore    WellnessScoreReport    `json:"wellness_score"`
}

func BuildSymptomFrequency(symptoms []models.Symptom) SymptomFrequencyReport {
	frequency := make(map[string]int, len(symptoms))
	for _, symptom := range symptoms {
		frequency[symptom.SymptomType]++
	}
	return SymptomFrequencyReport{
		Frequency:      frequency,
		TotalSymptoms:  len(symptoms),
		UniqueSymptoms: len(frequency),
	}
}

func BuildMoodTrends(moods []models.Mood) MoodTrendReport {
	distribution := make(map[string]int, len(moods))
	var intensityTotal, intensityCount int
	for _, mood := range moods {
		distribution[mood.MoodType]++
		if mood.Intensity != nil {
			intensityTotal += *mood.Intensity
			intensityCount++
		}
	}

	averageIntensity := 0.0
	if intensityCount > 0 {
		averageIntensity = float64(intensityTotal) / float64(intensityCount)
	}

	return MoodTrendReport{
		MoodDistribution: distribution,
		TotalMoods:       len(moods),
		AverageIntensity: averageIntensity,
	}
}

// BuildWellnessScore scores the trailing 30 days ending today. Fields left
// empty on a log are skipped when averaging, never counted as zero.
func BuildWellnessScore(logs []models.WellnessLog, today time.Time) WellnessScoreReport {
	windowEnd := dateOnly(today)
	windowStart := windowEnd.AddDate(0, 0, -wellnessWindowDays)

	inWindow := make([]models.WellnessLog, 0, len(logs))
	for _, entry := range logs {
		day := dateOnly(entry.Date)
		if day.Before(windowStart) || day.After(windowEnd) {
			continue
		}
		inWindow = append(inWindow, entry)
	}

	score := 50.0

	if len(inWindow) > 0 {
		avgWater, hasWater := meanOptionalInts(inWindow, func(entry models.WellnessLog) *int { return entry.WaterIntake })
		if hasWater {
			switch {
			case avgWater >= 2000:
				score += 15
			case avgWater >= 1500:
				score += 10
			}
		}

		avgSleep, hasSleep := meanOptionalInts(inWindow, func(entry models.WellnessLog) *int { return entry.SleepHours })
		if hasSleep {
			switch {
			case avgSleep >= 7 && avgSleep <= 9:
				score += 20
			case avgSleep >= 6:
				score += 10
			}
		}

		avgExercise, hasExercise := meanOptionalInts(inWindow, func(entry models.WellnessLog) *int { return entry.ExerciseMinutes })
		if hasExercise {
			switch {
			case avgExercise >= 150:
				score += 15
			case avgExercise >= 75:
				score += 10
			}
		}
	}

	score = math.Min(100, math.Max(0, score))

	return WellnessScoreReport{
		Score:     int(math.Round(score)),
		Level:     wellnessLevel(score),
		LogsCount: len(inWindow),
	}
}

func wellnessLevel(score float64) string {
	switch {
	case score >= 80:
		return WellnessLevelExcellent
	case score >= 60:
		return WellnessLevelGood
	case score >= 40:
		return WellnessLevelFair
	default:
		return WellnessLevelNeedsImprovement
	}
}

func meanOptionalInts(logs []models.WellnessLog, field func(models.WellnessLog) *int) (float64, bool) {
	var total, count int
	for _, entry := range logs {
		if value := field(entry); value != nil {
			total += *value
			count++
		}
	}
	if count == 0 {
		return 0, false
	}
	return float64(total) / float64(count), true
}

type AnalyticsPeriodReader interface {
	ListByUserDesc(userID uint) ([]models.Period, error)
}

type AnalyticsSymptomReader interface {
	ListByUserDesc(userID uint) ([]models.Symptom, error)
}

type AnalyticsMoodReader interface {
	ListByUserDesc(userID uint) ([]models.Mood, error)
}

type AnalyticsWellnessReader interface {
	ListByUserRange(userID uint, from time.Time, to time.Time) ([]models.WellnessLog, error)
}

type AnalyticsService struct {
	periods  AnalyticsPeriodReader
	symptoms AnalyticsSymptomReader
	moods    AnalyticsMoodReader
	wellness AnalyticsWellnessReader
}

func NewAnalyticsService(periods AnalyticsPeriodReader, symptoms AnalyticsSymptomReader, moods AnalyticsMoodReader, wellness AnalyticsWellnessReader) *AnalyticsService {
	return &AnalyticsService{
		periods:  periods,
		symptoms: symptoms,
		moods:    moods,
		wellness: wellness,
	}
}

func (service *AnalyticsService) CycleConsistencyForUser(user *models.User) (CycleConsistencyReport, error) {
	periods, err := service.periods.ListByUserDesc(user.ID)
	if err != nil {
		return CycleConsistencyReport{}, err
	}
	return BuildCycleConsistency(PeriodStartsDesc(periods), user.AverageCycleLength), nil
}

func (service *AnalyticsService) SymptomFrequencyForUser(user *models.User) (SymptomFrequencyReport, error) {
	symptoms, err := service.symptoms.ListByUserDesc(user.ID)
	if err != nil {
		return SymptomFrequencyReport{}, err
	}
	return BuildSymptomFrequency(symptoms), nil
}

func (service *AnalyticsService) MoodTrendsForUser(user *models.User) (MoodTrendReport, error) {
	moods, err := service.moods.ListByUserDesc(user.ID)
	if err != nil {
		return MoodTrendReport{}, err
	}
	return BuildMoodTrends(moods), nil
}

func (service *AnalyticsService) WellnessScoreForUser(user *models.User, today time.Time) (WellnessScoreReport, error) {
	windowEnd := dateOnly(today)
	windowStart := windowEnd.AddDate(0, 0, -wellnessWindowDays)

	logs, err := service.wellness.ListByUserRange(user.ID, windowStart, windowEnd)
	if err != nil {
		return WellnessScoreReport{}, err
	}
	return BuildWellnessScore(logs, today), nil
}

func (service *AnalyticsService) DashboardForUser(user *models.User, today time.Time) (DashboardReport, error) {
	consistency, err := service.CycleConsistencyForUser(user)
	if err != nil {
		return DashboardReport{}, err
	}
	symptoms, err := service.SymptomFrequencyForUser(user)
	if err != nil {
		return DashboardReport{}, err
	}
	moods, err := service.MoodTrendsForUser(user)
	if err != nil {
		return DashboardReport{}, err
	}
	wellness, err := service.WellnessScoreForUser(user, today)
	if err != nil {
		return DashboardReport{}, err
	}

	return DashboardReport{
		CycleConsistency: consistency,
		SymptomFrequency: symptoms,
		MoodTrends:       moods,
		WellnessScore:    wellness,
	}, nil
}
