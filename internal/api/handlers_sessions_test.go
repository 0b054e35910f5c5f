package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/Superak0s/SuperGym-App-sub001/internal/models"
	"github.com/google/uuid"
)

func TestSessionLifecycleOverHTTP(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	user := createTestUser(t, database, "session@example.com", "StrongPass1")
	authCookie := loginAndExtractAuthCookie(t, app, user.Email, "StrongPass1")

	startResponse := authedRequest(t, app, authCookie, http.MethodPost, "/api/sessions/start", map[string]any{"day_number": 1})
	if startResponse.StatusCode != http.StatusCreated {
		t.Fatalf("expected start status 201, got %d", startResponse.StatusCode)
	}
	var started struct {
		ID        string `json:"id"`
		DayNumber int    `json:"day_number"`
	}
	decodeJSONBody(t, startResponse, &started)
	if started.DayNumber != 1 {
		t.Fatalf("expected session for day 1, got %d", started.DayNumber)
	}
	if _, err := uuid.Parse(started.ID); err != nil {
		t.Fatalf("expected a uuid session id, got %q", started.ID)
	}

	activityResponse := authedRequest(t, app, authCookie, http.MethodPost, "/api/sessions/"+started.ID+"/activity", nil)
	if activityResponse.StatusCode != http.StatusOK {
		t.Fatalf("expected activity status 200, got %d", activityResponse.StatusCode)
	}
	var activity struct {
		Stats struct {
			Active bool `json:"active"`
		} `json:"stats"`
	}
	decodeJSONBody(t, activityResponse, &activity)
	if !activity.Stats.Active {
		t.Fatal("expected an active session in the stats")
	}

	endResponse := authedRequest(t, app, authCookie, http.MethodPost, "/api/sessions/"+started.ID+"/end", nil)
	if endResponse.StatusCode != http.StatusOK {
		t.Fatalf("expected end status 200, got %d", endResponse.StatusCode)
	}
	var ended struct {
		EndedAt       *time.Time `json:"ended_at"`
		AutoCompleted bool       `json:"auto_completed"`
	}
	decodeJSONBody(t, endResponse, &ended)
	if ended.EndedAt == nil {
		t.Fatal("expected an end timestamp")
	}
	if ended.AutoCompleted {
		t.Fatal("manual end must not be auto-completed")
	}

	// Ending locks the day.
	dayResponse := authedRequest(t, app, authCookie, http.MethodGet, "/api/days/1", nil)
	var day struct {
		State string `json:"state"`
	}
	decodeJSONBody(t, dayResponse, &day)
	if day.State != "locked" {
		t.Fatalf("expected the day locked after ending, got %q", day.State)
	}

	// Ending twice conflicts.
	repeatEnd := authedRequest(t, app, authCookie, http.MethodPost, "/api/sessions/"+started.ID+"/end", nil)
	if repeatEnd.StatusCode != http.StatusConflict {
		t.Fatalf("expected repeat end status 409, got %d", repeatEnd.StatusCode)
	}
}

func TestStartSessionOnLockedDay(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	user := createTestUser(t, database, "session-locked@example.com", "StrongPass1")
	authCookie := loginAndExtractAuthCookie(t, app, user.Email, "StrongPass1")

	if response := authedRequest(t, app, authCookie, http.MethodPost, "/api/days/2/lock", nil); response.StatusCode != http.StatusOK {
		t.Fatalf("lock failed with status %d", response.StatusCode)
	}

	response := authedRequest(t, app, authCookie, http.MethodPost, "/api/sessions/start", map[string]any{"day_number": 2})
	if response.StatusCode != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", response.StatusCode)
	}
}

func TestSessionActivityUnknownSession(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	user := createTestUser(t, database, "session-unknown@example.com", "StrongPass1")
	authCookie := loginAndExtractAuthCookie(t, app, user.Email, "StrongPass1")

	response := authedRequest(t, app, authCookie, http.MethodPost, "/api/sessions/"+uuid.NewString()+"/activity", nil)
	if response.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", response.StatusCode)
	}

	badID := authedRequest(t, app, authCookie, http.MethodPost, "/api/sessions/not-a-uuid/activity", nil)
	if badID.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400 for a malformed id, got %d", badID.StatusCode)
	}
}

func TestUnlockPreservesSessionHistory(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	user := createTestUser(t, database, "session-history@example.com", "StrongPass1")
	authCookie := loginAndExtractAuthCookie(t, app, user.Email, "StrongPass1")

	startResponse := authedRequest(t, app, authCookie, http.MethodPost, "/api/sessions/start", map[string]any{"day_number": 3})
	var started struct {
		ID string `json:"id"`
	}
	decodeJSONBody(t, startResponse, &started)
	if response := authedRequest(t, app, authCookie, http.MethodPost, "/api/sessions/"+started.ID+"/end", nil); response.StatusCode != http.StatusOK {
		t.Fatalf("end failed with status %d", response.StatusCode)
	}

	if response := authedRequest(t, app, authCookie, http.MethodPost, "/api/days/3/unlock", nil); response.StatusCode != http.StatusOK {
		t.Fatalf("unlock failed with status %d", response.StatusCode)
	}

	var count int64
	if err := database.Model(&models.WorkoutSession{}).Where("user_id = ?", user.ID).Count(&count).Error; err != nil {
		t.Fatalf("count sessions: %v", err)
	}
	if count != 1 {
		t.Fatalf("unlock must preserve session history, got %d sessions", count)
	}
}

func TestListAndDeleteSessions(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	user := createTestUser(t, database, "session-list@example.com", "StrongPass1")
	authCookie := loginAndExtractAuthCookie(t, app, user.Email, "StrongPass1")

	for _, day := range []int{1, 2} {
		startResponse := authedRequest(t, app, authCookie, http.MethodPost, "/api/sessions/start", map[string]any{"day_number": day})
		var started struct {
			ID string `json:"id"`
		}
		decodeJSONBody(t, startResponse, &started)
		if response := authedRequest(t, app, authCookie, http.MethodPost, "/api/sessions/"+started.ID+"/end", nil); response.StatusCode != http.StatusOK {
			t.Fatalf("end day %d session failed with status %d", day, response.StatusCode)
		}
	}

	listResponse := authedRequest(t, app, authCookie, http.MethodGet, "/api/sessions", nil)
	var listed struct {
		Sessions []map[string]any `json:"sessions"`
	}
	decodeJSONBody(t, listResponse, &listed)
	if len(listed.Sessions) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(listed.Sessions))
	}

	deleteResponse := authedRequest(t, app, authCookie, http.MethodDelete, "/api/sessions", nil)
	if deleteResponse.StatusCode != http.StatusNoContent {
		t.Fatalf("expected delete status 204, got %d", deleteResponse.StatusCode)
	}

	var count int64
	if err := database.Model(&models.WorkoutSession{}).Where("user_id = ?", user.ID).Count(&count).Error; err != nil {
		t.Fatalf("count sessions: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected all sessions wiped, got %d", count)
	}
}
