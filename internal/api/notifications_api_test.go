package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/reddot-health/reddot/internal/models"
)

func TestNotificationsOverHTTP(t *testing.T) {
	t.Parallel()

	app, repos := newTestApp(t)
	token := registerTestUser(t, app, "notify@example.com")

	var listed []models.Notification
	decodeJSONBody(t, doJSON(t, app, http.MethodGet, "/api/notifications", token, nil), &listed)
	if len(listed) != 0 {
		t.Fatalf("expected no notifications for a new account, got %d", len(listed))
	}

	notification := models.Notification{
		UserID:  1,
		Type:    models.NotificationPeriodReminder,
		Message: "Your predicted period starts in 2 day(s) on Jun 29.",
		DueDate: time.Date(2025, time.June, 29, 0, 0, 0, 0, time.UTC),
	}
	if err := repos.Notifications.Create(&notification); err != nil {
		t.Fatalf("seed notification: %v", err)
	}

	decodeJSONBody(t, doJSON(t, app, http.MethodGet, "/api/notifications", token, nil), &listed)
	if len(listed) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(listed))
	}
	if listed[0].Read {
		t.Fatal("expected the notification to start unread")
	}

	markResponse := doJSON(t, app, http.MethodPost, "/api/notifications/1/read", token, nil)
	markResponse.Body.Close()
	if markResponse.StatusCode != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", markResponse.StatusCode)
	}

	decodeJSONBody(t, doJSON(t, app, http.MethodGet, "/api/notifications", token, nil), &listed)
	if len(listed) != 1 || !listed[0].Read {
		t.Fatalf("expected the notification to be marked read, got %+v", listed)
	}
}
