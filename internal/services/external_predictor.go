package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/reddot-health/reddot/internal/models"
)

// ErrExternalPredictionUnavailable covers every failure of the remote
// predictor: transport errors, timeouts, non-2xx statuses and malformed
// responses. Callers recover by falling back to the rule-based path.
var ErrExternalPredictionUnavailable = errors.New("external prediction unavailable")

const externalDateLayout = "2006-01-02"

type ExternalPredictor struct {
	baseURL string
	client  *http.Client
}

func NewExternalPredictor(baseURL string, timeout time.Duration) *ExternalPredictor {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &ExternalPredictor{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

type externalPeriodPayload struct {
	StartDate   string  `json:"start_date"`
	EndDate     *string `json:"end_date"`
	CycleLength int     `json:"cycle_length"`
}

type externalPredictionRequest struct {
	UserID              uint                    `json:"user_id"`
	Periods             []externalPeriodPayload `json:"periods"`
	AverageCycleLength  *int                    `json:"average_cycle_length"`
	AveragePeriodLength *int                    `json:"average_period_length"`
}

type externalPredictionResponse struct {
	PredictedPeriodStart   *string  `json:"predicted_period_start"`
	PredictedOvulationDate *string  `json:"predicted_ovulation_date"`
	FertileWindowStart     *string  `json:"fertile_window_start"`
	FertileWindowEnd       *string  `json:"fertile_window_end"`
	Confidence             *float64 `json:"confidence"`
	Explanation            *string  `json:"explanation"`
	IsIrregular            *bool    `json:"is_irregular"`
	EstimatedCycleLength   *int     `json:"estimated_cycle_length"`
}

// Predict makes a single attempt against the remote predictor. No retry:
// the orchestrator's fallback is the recovery path.
func (predictor *ExternalPredictor) Predict(ctx context.Context, userID uint, profile CycleProfile, periods []models.Period) (CyclePrediction, error) {
	payload := buildExternalRequest(userID, profile, periods)

	body, err := json.Marshal(payload)
	if err != nil {
		return CyclePrediction{}, fmt.Errorf("%w: encode request: %v", ErrExternalPredictionUnavailable, err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, predictor.baseURL+"/predict", bytes.NewReader(body))
	if err != nil {
		return CyclePrediction{}, fmt.Errorf("%w: build request: %v", ErrExternalPredictionUnavailable, err)
	}
	request.Header.Set("Content-Type", "application/json")

	response, err := predictor.client.Do(request)
	if err != nil {
		return CyclePrediction{}, fmt.Errorf("%w: %v", ErrExternalPredictionUnavailable, err)
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return CyclePrediction{}, fmt.Errorf("%w: status %d", ErrExternalPredictionUnavailable, response.StatusCode)
	}

	var parsed externalPredictionResponse
	if err := json.NewDecoder(io.LimitReader(response.Body, 1<<20)).Decode(&parsed); err != nil {
		return CyclePrediction{}, fmt.Errorf("%w: decode response: %v", ErrExternalPredictionUnavailable, err)
	}

	return mapExternalResponse(parsed)
}

func buildExternalRequest(userID uint, profile CycleProfile, periods []models.Period) externalPredictionRequest {
	sorted := make([]models.Period, 0, len(periods))
	sorted = append(sorted, periods...)
	sortPeriodsDesc(sorted)

	payloads := make([]externalPeriodPayload, 0, len(sorted))
	for i, period := range sorted {
		cycleLength := models.DefaultCycleLength
		if i+1 < len(sorted) {
			cycleLength = daysBetween(sorted[i+1].StartDate, period.StartDate)
		}

		var endDate *string
		if period.EndDate != nil {
			formatted := dateOnly(*period.EndDate).Format(externalDateLayout)
			endDate = &formatted
		}

		payloads = append(payloads, externalPeriodPayload{
			StartDate:   dateOnly(period.StartDate).Format(externalDateLayout),
			EndDate:     endDate,
			CycleLength: cycleLength,
		})
	}

	return externalPredictionRequest{
		UserID:              userID,
		Periods:             payloads,
		AverageCycleLength:  profile.AverageCycleLength,
		AveragePeriodLength: profile.AveragePeriodLength,
	}
}

// mapExternalResponse rejects any response with missing or unparsable
// fields rather than guessing at partial predictions.
func mapExternalResponse(parsed externalPredictionResponse) (CyclePrediction, error) {
	if parsed.PredictedPeriodStart == nil || parsed.Confidence == nil ||
		parsed.Explanation == nil || parsed.IsIrregular == nil || parsed.EstimatedCycleLength == nil {
		return CyclePrediction{}, fmt.Errorf("%w: response missing required fields", ErrExternalPredictionUnavailable)
	}

	predictedStart, err := parseExternalDate(*parsed.PredictedPeriodStart)
	if err != nil {
		return CyclePrediction{}, err
	}

	ovulationDate, err := parseOptionalExternalDate(parsed.PredictedOvulationDate)
	if err != nil {
		return CyclePrediction{}, err
	}
	fertileStart, err := parseOptionalExternalDate(parsed.FertileWindowStart)
	if err != nil {
		return CyclePrediction{}, err
	}
	fertileEnd, err := parseOptionalExternalDate(parsed.FertileWindowEnd)
	if err != nil {
		return CyclePrediction{}, err
	}

	return CyclePrediction{
		PredictedPeriodStart:   predictedStart,
		PredictedOvulationDate: ovulationDate,
		FertileWindowStart:     fertileStart,
		FertileWindowEnd:       fertileEnd,
		Confidence:             *parsed.Confidence,
		Explanation:            *parsed.Explanation,
		IsIrregular:            *parsed.IsIrregular,
		EstimatedCycleLength:   *parsed.EstimatedCycleLength,
	}, nil
}

func parseExternalDate(raw string) (time.Time, error) {
	parsed, err := time.Parse(externalDateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q", ErrExternalPredictionUnavailable, raw)
	}
	return parsed, nil
}

func parseOptionalExternalDate(raw *string) (*time.Time, error) {
	if raw == nil {
		return nil, nil
	}
	parsed, err := parseExternalDate(*raw)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
