package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"testing"

	api "github.com/rogerio-castellano/expiry-tracker/internal/http"
	handler "github.com/rogerio-castellano/expiry-tracker/internal/http/handlers"
	"github.com/rogerio-castellano/expiry-tracker/internal/models"
)

func TestGetProfileHandler(t *testing.T) {
	r := api.NewRouter()

	w := doJSON(r, http.MethodGet, "/profile", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp models.Profile
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.UserID != adminID {
		t.Errorf("expected profile of %s, got %s", adminID, resp.UserID)
	}
	if resp.DisplayName != "admin" {
		t.Errorf("expected display name 'admin', got %q", resp.DisplayName)
	}
}

func TestUpdateProfileHandler(t *testing.T) {
	r := api.NewRouter()

	w := doJSON(r, http.MethodPut, "/profile", handler.ProfileRequest{
		DisplayName:              "Administrator",
		NotificationDaysBefore:   7,
		PushNotificationsEnabled: true,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d: %s", w.Code, w.Body.String())
	}

	var resp models.Profile
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.DisplayName != "Administrator" {
		t.Errorf("expected updated display name, got %q", resp.DisplayName)
	}
	if resp.NotificationDaysBefore != 7 {
		t.Errorf("expected reminder window 7, got %d", resp.NotificationDaysBefore)
	}
	if !resp.PushNotificationsEnabled {
		t.Error("expected push notifications enabled")
	}

	// Restore the fixture state for the other tests.
	t.Cleanup(func() {
		doJSON(r, http.MethodPut, "/profile", handler.ProfileRequest{
			DisplayName:            "admin",
			NotificationDaysBefore: 3,
		})
	})
}

func TestUpdateProfileHandler_InvalidWindow(t *testing.T) {
	r := api.NewRouter()

	w := doJSON(r, http.MethodPut, "/profile", handler.ProfileRequest{
		DisplayName:            "admin",
		NotificationDaysBefore: 400,
	})
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422 for an out-of-range reminder window, got %d", w.Code)
	}
}
