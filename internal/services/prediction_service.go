package services

import (
	"context"
	"sort"
	"time"

	"github.com/reddot-health/reddot/internal/models"
	"github.com/sirupsen/logrus"
)

// Remote predictions need enough history to beat the local heuristic.
const minPeriodsForRemotePrediction = 3

type PredictionPeriodReader interface {
	ListByUserDesc(userID uint) ([]models.Period, error)
}

type RemotePredictor interface {
	Predict(ctx context.Context, userID uint, profile CycleProfile, periods []models.Period) (CyclePrediction, error)
}

type PredictionService struct {
	periods PredictionPeriodReader
	remote  RemotePredictor
}

// NewPredictionService wires the orchestrator. A nil remote predictor means
// every prediction takes the rule-based path.
func NewPredictionService(periods PredictionPeriodReader, remote RemotePredictor) *PredictionService {
	return &PredictionService{periods: periods, remote: remote}
}

// PredictNextCycle returns the same prediction shape whether the remote
// predictor answered or the rule-based fallback ran.
func (service *PredictionService) PredictNextCycle(ctx context.Context, user *models.User, today time.Time) (CyclePrediction, error) {
	periods, err := service.periods.ListByUserDesc(user.ID)
	if err != nil {
		return CyclePrediction{}, err
	}

	sorted := make([]models.Period, 0, len(periods))
	sorted = append(sorted, periods...)
	sortPeriodsDesc(sorted)

	profile := ProfileFromUser(user)

	if service.remote != nil && len(sorted) >= minPeriodsForRemotePrediction {
		prediction, err := service.remote.Predict(ctx, user.ID, profile, sorted)
		if err == nil {
			return prediction, nil
		}
		logrus.WithError(err).WithField("user_id", user.ID).Warn("remote prediction failed, using rule-based fallback")
	}

	return BuildRuleBasedPrediction(profile, sorted, today), nil
}

func sortPeriodsDesc(periods []models.Period) {
	sort.Slice(periods, func(i, j int) bool {
		return periods[i].StartDate.After(periods[j].StartDate)
	})
}
