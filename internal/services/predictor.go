package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/reddot-health/reddot/internal/models"
)

const (
	// Ovulation is assumed 14 days before the next period (luteal phase).
	lutealPhaseDays = 14

	// Fertile window spans 5 days before ovulation through 1 day after.
	fertileWindowLeadDays  = 5
	fertileWindowTrailDays = 1

	noDataConfidence     = 0.3
	irregularityDayLimit = 7
)

type CycleProfile struct {
	AverageCycleLength  *int
	AveragePeriodLength *int
	LastPeriodStart     *time.Time
}

func ProfileFromUser(user *models.User) CycleProfile {
	if user == nil {
		return CycleProfile{}
	}
	return CycleProfile{
		AverageCycleLength:  user.AverageCycleLength,
		AveragePeriodLength: user.AveragePeriodLength,
		LastPeriodStart:     user.LastPeriodStart,
	}
}

type CyclePrediction struct {
	PredictedPeriodStart   time.Time  `json:"predicted_period_start"`
	PredictedOvulationDate *time.Time `json:"predicted_ovulation_date"`
	FertileWindowStart     *time.Time `json:"fertile_window_start"`
	FertileWindowEnd       *time.Time `json:"fertile_window_end"`
	Confidence             float64    `json:"confidence"`
	Explanation            string     `json:"explanation"`
	IsIrregular            bool       `json:"is_irregular"`
	EstimatedCycleLength   int        `json:"estimated_cycle_length"`
}

// BuildRuleBasedPrediction projects the next cycle from logged history and
// user-declared averages. It is deterministic for a fixed today and never
// mutates its inputs.
func BuildRuleBasedPrediction(profile CycleProfile, periods []models.Period, today time.Time) CyclePrediction {
	startsDesc := PeriodStartsDesc(periods)

	var lastPeriodStart *time.Time
	if profile.LastPeriodStart != nil {
		anchored := dateOnly(*profile.LastPeriodStart)
		lastPeriodStart = &anchored
	} else if len(startsDesc) > 0 {
		lastPeriodStart = &startsDesc[0]
	}

	if lastPeriodStart == nil {
		return CyclePrediction{
			PredictedPeriodStart: dateOnly(today).AddDate(0, 0, models.DefaultCycleLength),
			Confidence:           noDataConfidence,
			Explanation:          "We don't have enough data yet. Please log your periods to get accurate predictions.",
			EstimatedCycleLength: models.DefaultCycleLength,
		}
	}

	avgCycleLength := estimateCycleLength(startsDesc, profile.AverageCycleLength)

	predictedStart := lastPeriodStart.AddDate(0, 0, avgCycleLength)
	ovulationDate := predictedStart.AddDate(0, 0, -lutealPhaseDays)
	fertileStart := ovulationDate.AddDate(0, 0, -fertileWindowLeadDays)
	fertileEnd := ovulationDate.AddDate(0, 0, fertileWindowTrailDays)

	confidence := predictionConfidence(len(periods), avgCycleLength)
	isIrregular := cyclesLookIrregular(startsDesc, avgCycleLength)

	return CyclePrediction{
		PredictedPeriodStart:   predictedStart,
		PredictedOvulationDate: &ovulationDate,
		FertileWindowStart:     &fertileStart,
		FertileWindowEnd:       &fertileEnd,
		Confidence:             confidence,
		Explanation:            buildExplanation(len(periods), avgCycleLength, confidence, isIrregular),
		IsIrregular:            isIrregular,
		EstimatedCycleLength:   avgCycleLength,
	}
}

// estimateCycleLength averages the valid observed cycle lengths, blending
// with the user-declared average when present. Integer division throughout:
// changing it would shift predicted dates.
func estimateCycleLength(startsDesc []time.Time, userAverage *int) int {
	samples := CycleLengthSamples(startsDesc)
	if len(samples) == 0 {
		if userAverage != nil {
			return *userAverage
		}
		return models.DefaultCycleLength
	}

	var totalDays int
	for _, sample := range samples {
		totalDays += sample
	}
	calculated := totalDays / len(samples)

	if userAverage != nil {
		return (calculated + *userAverage) / 2
	}
	return calculated
}

func predictionConfidence(periodCount int, cycleLength int) float64 {
	dataConfidence := 0.5 + float64(periodCount)*0.1
	if dataConfidence > 0.9 {
		dataConfidence = 0.9
	}

	cycleConfidence := 0.7
	if cycleLength >= 26 && cycleLength <= 32 {
		cycleConfidence = 0.9
	}

	return (dataConfidence + cycleConfidence) / 2
}

// cyclesLookIrregular checks the mean absolute deviation of raw adjacent
// start-date gaps against the estimated length. Unlike the sample filter,
// this deliberately includes outlier gaps.
func cyclesLookIrregular(startsDesc []time.Time, avgCycleLength int) bool {
	if len(startsDesc) < 3 {
		return false
	}

	var totalDeviation int
	for i := 0; i < len(startsDesc)-1; i++ {
		gap := daysBetween(startsDesc[i+1], startsDesc[i])
		deviation := gap - avgCycleLength
		if deviation < 0 {
			deviation = -deviation
		}
		totalDeviation += deviation
	}

	meanDeviation := totalDeviation / (len(startsDesc) - 1)
	return meanDeviation > irregularityDayLimit
}

func buildExplanation(periodCount int, cycleLength int, confidence float64, isIrregular bool) string {
	var explanation strings.Builder

	if periodCount < 3 {
		explanation.WriteString("We're still learning your cycle pattern. ")
	} else {
		fmt.Fprintf(&explanation, "Based on your %d logged periods, ", periodCount)
	}

	fmt.Fprintf(&explanation, "your next period is predicted to start in about %d days. ", cycleLength)

	if isIrregular {
		explanation.WriteString("Your cycles show some variation, which is normal. ")
	}

	fmt.Fprintf(&explanation, "Prediction confidence: %d%%. ", int(confidence*100))

	if confidence < 0.7 {
		explanation.WriteString("Keep logging your periods to improve accuracy!")
	}

	return explanation.String()
}
