package api

import (
	"bytes"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/reddot-health/reddot/internal/db"
	"github.com/reddot-health/reddot/internal/services"
)

func newTestApp(t *testing.T) (*fiber.App, *db.Repositories) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "reddot-test.db")
	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	repos := db.NewRepositories(database)

	handler := NewHandler(HandlerConfig{
		SecretKey: "test-secret-key",
		Location:  time.UTC,
		Auth:      services.NewAuthService(repos.Users),
		Periods:   services.NewPeriodService(repos.Periods, repos.Users),
		Wellness: services.NewWellnessService(
			repos.WellnessLogs,
			repos.Symptoms,
			repos.Moods,
			rand.New(rand.NewSource(1)),
		),
		Analytics:     services.NewAnalyticsService(repos.Periods, repos.Symptoms, repos.Moods, repos.WellnessLogs),
		Predictions:   services.NewPredictionService(repos.Periods, nil),
		Notifications: repos.Notifications,
	})

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, repos
}

func doJSON(t *testing.T, app *fiber.App, method string, path string, token string, payload any) *http.Response {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	} else {
		body = bytes.NewReader(nil)
	}

	request := httptest.NewRequest(method, path, body)
	request.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	return response
}

func decodeJSONBody(t *testing.T, response *http.Response, target any) {
	t.Helper()
	defer response.Body.Close()
	if err := json.NewDecoder(response.Body).Decode(target); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
}

func registerTestUser(t *testing.T, app *fiber.App, email string) string {
	t.Helper()

	response := doJSON(t, app, http.MethodPost, "/api/auth/register", "", map[string]any{
		"email":      email,
		"password":   "StrongPass1",
		"first_name": "Test",
	})
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected register status 201, got %d", response.StatusCode)
	}

	var parsed struct {
		Token string `json:"token"`
	}
	decodeJSONBody(t, response, &parsed)
	if parsed.Token == "" {
		t.Fatal("expected a session token after registration")
	}
	return parsed.Token
}

func logTestPeriod(t *testing.T, app *fiber.App, token string, startDate string) {
	t.Helper()

	response := doJSON(t, app, http.MethodPost, "/api/periods", token, map[string]any{
		"start_date":     startDate,
		"flow_intensity": "moderate",
	})
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected period create status 201, got %d", response.StatusCode)
	}
	response.Body.Close()
}
