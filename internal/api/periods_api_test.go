package api

import (
	"net/http"
	"testing"

	"github.com/reddot-health/reddot/internal/models"
)

func TestPeriodLifecycle(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	token := registerTestUser(t, app, "periods@example.com")

	logTestPeriod(t, app, token, "2025-06-01")
	logTestPeriod(t, app, token, "2025-05-04")

	var listed []models.Period
	decodeJSONBody(t, doJSON(t, app, http.MethodGet, "/api/periods", token, nil), &listed)
	if len(listed) != 2 {
		t.Fatalf("expected 2 periods, got %d", len(listed))
	}
	if got := listed[0].StartDate.Format("2006-01-02"); got != "2025-06-01" {
		t.Fatalf("expected newest period first, got %s", got)
	}

	updateResponse := doJSON(t, app, http.MethodPut, "/api/periods/1", token, map[string]any{
		"start_date":     "2025-06-02",
		"end_date":       "2025-06-06",
		"flow_intensity": "heavy",
		"notes":          "updated entry",
	})
	if updateResponse.StatusCode != http.StatusOK {
		t.Fatalf("expected update status 200, got %d", updateResponse.StatusCode)
	}
	var updated models.Period
	decodeJSONBody(t, updateResponse, &updated)
	if updated.FlowIntensity != models.FlowHeavy || updated.Notes != "updated entry" {
		t.Fatalf("unexpected updated period: %+v", updated)
	}

	deleteResponse := doJSON(t, app, http.MethodDelete, "/api/periods/2", token, nil)
	deleteResponse.Body.Close()
	if deleteResponse.StatusCode != http.StatusNoContent {
		t.Fatalf("expected delete status 204, got %d", deleteResponse.StatusCode)
	}

	decodeJSONBody(t, doJSON(t, app, http.MethodGet, "/api/periods", token, nil), &listed)
	if len(listed) != 1 {
		t.Fatalf("expected 1 period after delete, got %d", len(listed))
	}
}

func TestPeriodValidationOverHTTP(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	token := registerTestUser(t, app, "period-validation@example.com")

	cases := []struct {
		name    string
		payload map[string]any
	}{
		{name: "missing start date", payload: map[string]any{"flow_intensity": "light"}},
		{name: "end before start", payload: map[string]any{"start_date": "2025-06-10", "end_date": "2025-06-01"}},
		{name: "unknown flow", payload: map[string]any{"start_date": "2025-06-10", "flow_intensity": "torrential"}},
		{name: "pain level out of range", payload: map[string]any{"start_date": "2025-06-10", "pain_level": 11}},
		{name: "unparsable date", payload: map[string]any{"start_date": "June 10th"}},
	}

	for _, testCase := range cases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			response := doJSON(t, app, http.MethodPost, "/api/periods", token, testCase.payload)
			response.Body.Close()
			if response.StatusCode != http.StatusBadRequest {
				t.Fatalf("expected status 400, got %d", response.StatusCode)
			}
		})
	}
}

func TestPeriodsAreScopedPerUser(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	ownerToken := registerTestUser(t, app, "owner@example.com")
	otherToken := registerTestUser(t, app, "other@example.com")

	logTestPeriod(t, app, ownerToken, "2025-06-01")

	var otherPeriods []models.Period
	decodeJSONBody(t, doJSON(t, app, http.MethodGet, "/api/periods", otherToken, nil), &otherPeriods)
	if len(otherPeriods) != 0 {
		t.Fatalf("expected no periods for another user, got %d", len(otherPeriods))
	}

	deleteResponse := doJSON(t, app, http.MethodDelete, "/api/periods/1", otherToken, nil)
	deleteResponse.Body.Close()
	if deleteResponse.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 deleting another user's period, got %d", deleteResponse.StatusCode)
	}
}
