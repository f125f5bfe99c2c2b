package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func validExternalResponse() map[string]any {
	return map[string]any{
		"predicted_period_start":   "2025-03-29",
		"predicted_ovulation_date": "2025-03-15",
		"fertile_window_start":     "2025-03-10",
		"fertile_window_end":       "2025-03-16",
		"confidence":               0.82,
		"explanation":              "Model-based projection from 3 cycles.",
		"is_irregular":             false,
		"estimated_cycle_length":   28,
	}
}

func TestExternalPredictor_MapsSuccessfulResponse(t *testing.T) {
	t.Parallel()

	var captured externalPredictionRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/predict" {
			t.Errorf("expected POST /predict, got %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(validExternalResponse())
	}))
	defer server.Close()

	predictor := NewExternalPredictor(server.URL, time.Second)
	profile := CycleProfile{AverageCycleLength: intPtr(29), AveragePeriodLength: intPtr(5)}
	periods := periodsFromStarts(t, "2025-03-01", "2025-02-01", "2025-01-02")

	prediction, err := predictor.Predict(context.Background(), 7, profile, periods)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := prediction.PredictedPeriodStart.Format("2006-01-02"); got != "2025-03-29" {
		t.Fatalf("expected predicted start 2025-03-29, got %s", got)
	}
	if prediction.Confidence != 0.82 {
		t.Fatalf("expected confidence 0.82, got %v", prediction.Confidence)
	}
	if prediction.EstimatedCycleLength != 28 {
		t.Fatalf("expected estimated length 28, got %d", prediction.EstimatedCycleLength)
	}

	if captured.UserID != 7 {
		t.Fatalf("expected user id 7 in request, got %d", captured.UserID)
	}
	if len(captured.Periods) != 3 {
		t.Fatalf("expected 3 periods in request, got %d", len(captured.Periods))
	}
	if captured.Periods[0].StartDate != "2025-03-01" || captured.Periods[0].CycleLength != 28 {
		t.Fatalf("unexpected newest period payload: %+v", captured.Periods[0])
	}
	// The oldest period has no older neighbor, so its cycle length defaults.
	if captured.Periods[2].CycleLength != 28 {
		t.Fatalf("expected default cycle length for oldest period, got %d", captured.Periods[2].CycleLength)
	}
	if captured.AverageCycleLength == nil || *captured.AverageCycleLength != 29 {
		t.Fatalf("expected declared average 29 in request, got %v", captured.AverageCycleLength)
	}
}

func TestExternalPredictor_FailureModes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("not json"))
			},
		},
		{
			name: "missing required fields",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_ = json.NewEncoder(w).Encode(map[string]any{"confidence": 0.5})
			},
		},
		{
			name: "unparsable date",
			handler: func(w http.ResponseWriter, r *http.Request) {
				response := validExternalResponse()
				response["predicted_period_start"] = "March 29th"
				_ = json.NewEncoder(w).Encode(response)
			},
		},
	}

	for _, testCase := range cases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			server := httptest.NewServer(testCase.handler)
			defer server.Close()

			predictor := NewExternalPredictor(server.URL, time.Second)
			_, err := predictor.Predict(context.Background(), 1, CycleProfile{}, periodsFromStarts(t, "2025-03-01"))

			if !errors.Is(err, ErrExternalPredictionUnavailable) {
				t.Fatalf("expected ErrExternalPredictionUnavailable, got %v", err)
			}
		})
	}
}

func TestExternalPredictor_TimesOut(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	predictor := NewExternalPredictor(server.URL, 50*time.Millisecond)

	started := time.Now()
	_, err := predictor.Predict(context.Background(), 1, CycleProfile{}, periodsFromStarts(t, "2025-03-01"))
	elapsed := time.Since(started)

	if !errors.Is(err, ErrExternalPredictionUnavailable) {
		t.Fatalf("expected ErrExternalPredictionUnavailable, got %v", err)
	}
	if elapsed > 2*time.Second {
		t.Fatalf("timeout took too long: %v", elapsed)
	}
}
