package services

import (
	"math"
	"sort"
	"time"

	"github.com/reddot-health/reddot/internal/models"
)

const (
	ConsistencyVeryRegular      = "very_regular"
	ConsistencyRegular          = "regular"
	ConsistencyIrregular        = "irregular"
	ConsistencyInsufficientData = "insufficient_data"
)

// Gaps of 45 days or more are treated as missed logging, not a real cycle.
const maxValidCycleLengthDays = 45

type CycleConsistencyReport struct {
	AverageCycleLength int      `json:"average_cycle_length"`
	StandardDeviation  *float64 `json:"standard_deviation,omitempty"`
	Consistency        string   `json:"consistency"`
	CycleLengths       []int    `json:"cycle_lengths"`
	TotalCycles        int      `json:"total_cycles"`
}

// PeriodStartsDesc extracts start dates sorted newest-first. The caller's
// ordering is not trusted and the input slice is left untouched.
func PeriodStartsDesc(periods []models.Period) []time.Time {
	starts := make([]time.Time, 0, len(periods))
	for _, period := range periods {
		starts = append(starts, dateOnly(period.StartDate))
	}
	sort.Slice(starts, func(i, j int) bool {
		return starts[i].After(starts[j])
	})
	return starts
}

// CycleLengthSamples derives cycle lengths from newest-first start dates,
// keeping only plausible samples. Invalid gaps are dropped silently since
// missing or duplicate logs are expected noise.
func CycleLengthSamples(startsDesc []time.Time) []int {
	if len(startsDesc) < 2 {
		return nil
	}

	samples := make([]int, 0, len(startsDesc)-1)
	for i := 0; i < len(startsDesc)-1; i++ {
		days := daysBetween(startsDesc[i+1], startsDesc[i])
		if days > 0 && days < maxValidCycleLengthDays {
			samples = append(samples, days)
		}
	}
	return samples
}

func BuildCycleConsistency(startsDesc []time.Time, userAverage *int) CycleConsistencyReport {
	fallbackAverage := models.DefaultCycleLength
	if userAverage != nil {
		fallbackAverage = *userAverage
	}

	if len(startsDesc) < 2 {
		return CycleConsistencyReport{
			AverageCycleLength: fallbackAverage,
			Consistency:        ConsistencyInsufficientData,
			CycleLengths:       []int{},
		}
	}

	samples := CycleLengthSamples(startsDesc)
	if len(samples) == 0 {
		return CycleConsistencyReport{
			AverageCycleLength: fallbackAverage,
			Consistency:        ConsistencyInsufficientData,
			CycleLengths:       []int{},
		}
	}

	average := meanInts(samples)
	stdDev := populationStdDev(samples, average)

	consistency := ConsistencyIrregular
	switch {
	case stdDev < 3:
		consistency = ConsistencyVeryRegular
	case stdDev < 7:
		consistency = ConsistencyRegular
	}

	roundedStdDev := math.Round(stdDev*10) / 10
	return CycleConsistencyReport{
		AverageCycleLength: int(math.Round(average)),
		StandardDeviation:  &roundedStdDev,
		Consistency:        consistency,
		CycleLengths:       samples,
		TotalCycles:        len(samples),
	}
}

func meanInts(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	var total int
	for _, value := range values {
		total += value
	}
	return float64(total) / float64(len(values))
}

func populationStdDev(values []int, mean float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sumSquares float64
	for _, value := range values {
		delta := float64(value) - mean
		sumSquares += delta * delta
	}
	return math.Sqrt(sumSquares / float64(len(values)))
}
