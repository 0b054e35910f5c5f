package api

import (
	"net/http"
	"testing"

	"github.com/Superak0s/SuperGym-App-sub001/internal/models"
)

func TestPutAndGetServerURL(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	user := createTestUser(t, database, "serverurl@example.com", "StrongPass1")
	authCookie := loginAndExtractAuthCookie(t, app, user.Email, "StrongPass1")

	putResponse := authedRequest(t, app, authCookie, http.MethodPut, "/api/settings/server-url", map[string]any{
		"server_url": "https://sync.example.com/",
	})
	if putResponse.StatusCode != http.StatusOK {
		t.Fatalf("expected put status 200, got %d", putResponse.StatusCode)
	}

	var saved struct {
		ServerURL string `json:"server_url"`
	}
	decodeJSONBody(t, putResponse, &saved)
	if saved.ServerURL != "https://sync.example.com" {
		t.Fatalf("expected the trailing slash stripped, got %q", saved.ServerURL)
	}

	getResponse := authedRequest(t, app, authCookie, http.MethodGet, "/api/settings/server-url", nil)
	var loaded struct {
		ServerURL string `json:"server_url"`
	}
	decodeJSONBody(t, getResponse, &loaded)
	if loaded.ServerURL != "https://sync.example.com" {
		t.Fatalf("expected the persisted url back, got %q", loaded.ServerURL)
	}
}

func TestPutServerURLRejectsInvalidInput(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	user := createTestUser(t, database, "badurl@example.com", "StrongPass1")
	authCookie := loginAndExtractAuthCookie(t, app, user.Email, "StrongPass1")

	for _, raw := range []string{"", "   ", "gym.example.com", "ftp://gym.example.com"} {
		response := authedRequest(t, app, authCookie, http.MethodPut, "/api/settings/server-url", map[string]any{
			"server_url": raw,
		})
		if response.StatusCode != http.StatusBadRequest {
			t.Fatalf("expected status 400 for %q, got %d", raw, response.StatusCode)
		}
	}

	var stored models.User
	if err := database.First(&stored, user.ID).Error; err != nil {
		t.Fatalf("load user: %v", err)
	}
	if stored.ServerURL != "" {
		t.Fatalf("rejected urls must not be persisted, got %q", stored.ServerURL)
	}
}

func TestDeleteAccountRemovesEverything(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	user := createTestUser(t, database, "goodbye@example.com", "StrongPass1")
	authCookie := loginAndExtractAuthCookie(t, app, user.Email, "StrongPass1")

	// Seed rows in several owned tables.
	if response := authedRequest(t, app, authCookie, http.MethodPut, "/api/days/1/exercises/0/sets/0", map[string]any{"weight": 60.0, "reps": 10}); response.StatusCode != http.StatusOK {
		t.Fatalf("seed set failed with status %d", response.StatusCode)
	}
	if response := authedRequest(t, app, authCookie, http.MethodPost, "/api/days/2/lock", nil); response.StatusCode != http.StatusOK {
		t.Fatalf("seed lock failed with status %d", response.StatusCode)
	}
	if response := authedRequest(t, app, authCookie, http.MethodPost, "/api/creatine/intake", map[string]any{"grams": 5.0}); response.StatusCode != http.StatusCreated {
		t.Fatalf("seed intake failed with status %d", response.StatusCode)
	}

	deleteResponse := authedRequest(t, app, authCookie, http.MethodDelete, "/api/account", nil)
	if deleteResponse.StatusCode != http.StatusNoContent {
		t.Fatalf("expected delete status 204, got %d", deleteResponse.StatusCode)
	}

	for _, model := range []any{
		&models.User{},
		&models.SetRecord{},
		&models.DayStatus{},
		&models.CreatineIntake{},
		&models.SyncEntry{},
	} {
		var count int64
		if err := database.Model(model).Count(&count).Error; err != nil {
			t.Fatalf("count %T: %v", model, err)
		}
		if count != 0 {
			t.Fatalf("expected no %T rows after account deletion, got %d", model, count)
		}
	}

	// The old token no longer resolves to a user.
	afterwards := authedRequest(t, app, authCookie, http.MethodGet, "/api/plan", nil)
	if afterwards.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected status 401 after deletion, got %d", afterwards.StatusCode)
	}
}

func TestUpdateProfileDisplayName(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	user := createTestUser(t, database, "profile@example.com", "StrongPass1")
	authCookie := loginAndExtractAuthCookie(t, app, user.Email, "StrongPass1")

	response := authedRequest(t, app, authCookie, http.MethodPut, "/api/settings/profile", map[string]any{
		"display_name": "  New Name  ",
	})
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}

	var stored models.User
	if err := database.First(&stored, user.ID).Error; err != nil {
		t.Fatalf("load user: %v", err)
	}
	if stored.DisplayName != "New Name" {
		t.Fatalf("expected trimmed display name persisted, got %q", stored.DisplayName)
	}
}
