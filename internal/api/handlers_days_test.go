package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/Superak0s/SuperGym-App-sub001/internal/models"
)

func TestSaveSetAndDayState(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	user := createTestUser(t, database, "sets@example.com", "StrongPass1")
	authCookie := loginAndExtractAuthCookie(t, app, user.Email, "StrongPass1")

	if response := authedRequest(t, app, authCookie, http.MethodPut, "/api/plan", planFixture()); response.StatusCode != http.StatusOK {
		t.Fatalf("seed plan failed with status %d", response.StatusCode)
	}

	saveResponse := authedRequest(t, app, authCookie, http.MethodPut, "/api/days/1/exercises/0/sets/0", map[string]any{
		"weight": 100.0,
		"reps":   8,
	})
	if saveResponse.StatusCode != http.StatusOK {
		t.Fatalf("expected save status 200, got %d", saveResponse.StatusCode)
	}

	dayResponse := authedRequest(t, app, authCookie, http.MethodGet, "/api/days/1", nil)
	var day struct {
		State   string `json:"state"`
		Records []struct {
			Weight float64 `json:"weight"`
			Reps   int     `json:"reps"`
		} `json:"records"`
	}
	decodeJSONBody(t, dayResponse, &day)
	if day.State != "unlocked-partial" {
		t.Fatalf("expected partial state after one set, got %q", day.State)
	}
	if len(day.Records) != 1 || day.Records[0].Weight != 100 || day.Records[0].Reps != 8 {
		t.Fatalf("expected the saved record back, got %#v", day.Records)
	}
}

func TestSaveSetUpsertsSameSlot(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	user := createTestUser(t, database, "upsert@example.com", "StrongPass1")
	authCookie := loginAndExtractAuthCookie(t, app, user.Email, "StrongPass1")

	if response := authedRequest(t, app, authCookie, http.MethodPut, "/api/plan", planFixture()); response.StatusCode != http.StatusOK {
		t.Fatalf("seed plan failed with status %d", response.StatusCode)
	}

	for _, weight := range []float64{95, 100} {
		response := authedRequest(t, app, authCookie, http.MethodPut, "/api/days/1/exercises/0/sets/0", map[string]any{
			"weight": weight,
			"reps":   8,
		})
		if response.StatusCode != http.StatusOK {
			t.Fatalf("expected save status 200, got %d", response.StatusCode)
		}
	}

	var count int64
	if err := database.Model(&models.SetRecord{}).Where("user_id = ?", user.ID).Count(&count).Error; err != nil {
		t.Fatalf("count records: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected one record after re-saving the slot, got %d", count)
	}

	var record models.SetRecord
	if err := database.Where("user_id = ?", user.ID).First(&record).Error; err != nil {
		t.Fatalf("load record: %v", err)
	}
	if record.Weight != 100 {
		t.Fatalf("expected the slot overwritten with 100, got %f", record.Weight)
	}
}

func TestSaveSetRejectsNegativeValues(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	user := createTestUser(t, database, "negative@example.com", "StrongPass1")
	authCookie := loginAndExtractAuthCookie(t, app, user.Email, "StrongPass1")

	response := authedRequest(t, app, authCookie, http.MethodPut, "/api/days/1/exercises/0/sets/0", map[string]any{
		"weight": -10.0,
		"reps":   8,
	})
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", response.StatusCode)
	}
}

func TestLockedDayRejectsEdits(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	user := createTestUser(t, database, "locked@example.com", "StrongPass1")
	authCookie := loginAndExtractAuthCookie(t, app, user.Email, "StrongPass1")

	if response := authedRequest(t, app, authCookie, http.MethodPost, "/api/days/1/lock", nil); response.StatusCode != http.StatusOK {
		t.Fatalf("lock failed with status %d", response.StatusCode)
	}

	saveResponse := authedRequest(t, app, authCookie, http.MethodPut, "/api/days/1/exercises/0/sets/0", map[string]any{
		"weight": 100.0,
		"reps":   8,
	})
	if saveResponse.StatusCode != http.StatusConflict {
		t.Fatalf("expected status 409 on a locked day, got %d", saveResponse.StatusCode)
	}

	deleteResponse := authedRequest(t, app, authCookie, http.MethodDelete, "/api/days/1/exercises/0/sets/0", nil)
	if deleteResponse.StatusCode != http.StatusConflict {
		t.Fatalf("expected delete status 409 on a locked day, got %d", deleteResponse.StatusCode)
	}

	dayResponse := authedRequest(t, app, authCookie, http.MethodGet, "/api/days/1", nil)
	var day struct {
		State string `json:"state"`
	}
	decodeJSONBody(t, dayResponse, &day)
	if day.State != "locked" {
		t.Fatalf("expected locked state, got %q", day.State)
	}
}

func TestUnlockDayClearsRecords(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	user := createTestUser(t, database, "unlock@example.com", "StrongPass1")
	authCookie := loginAndExtractAuthCookie(t, app, user.Email, "StrongPass1")

	if response := authedRequest(t, app, authCookie, http.MethodPut, "/api/plan", planFixture()); response.StatusCode != http.StatusOK {
		t.Fatalf("seed plan failed with status %d", response.StatusCode)
	}
	if response := authedRequest(t, app, authCookie, http.MethodPut, "/api/days/1/exercises/0/sets/0", map[string]any{"weight": 100.0, "reps": 8}); response.StatusCode != http.StatusOK {
		t.Fatalf("seed set failed with status %d", response.StatusCode)
	}
	if response := authedRequest(t, app, authCookie, http.MethodPost, "/api/days/1/lock", nil); response.StatusCode != http.StatusOK {
		t.Fatalf("lock failed with status %d", response.StatusCode)
	}

	if response := authedRequest(t, app, authCookie, http.MethodPost, "/api/days/1/unlock", nil); response.StatusCode != http.StatusOK {
		t.Fatalf("unlock failed with status %d", response.StatusCode)
	}

	dayResponse := authedRequest(t, app, authCookie, http.MethodGet, "/api/days/1", nil)
	var day struct {
		State   string           `json:"state"`
		Records []map[string]any `json:"records"`
	}
	decodeJSONBody(t, dayResponse, &day)
	if day.State != "unlocked-empty" {
		t.Fatalf("expected unlocked-empty after unlock, got %q", day.State)
	}
	if len(day.Records) != 0 {
		t.Fatalf("expected records cleared, got %d", len(day.Records))
	}
}

func TestUnlockAllDays(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	user := createTestUser(t, database, "unlockall@example.com", "StrongPass1")
	authCookie := loginAndExtractAuthCookie(t, app, user.Email, "StrongPass1")

	for _, day := range []string{"1", "2"} {
		if response := authedRequest(t, app, authCookie, http.MethodPost, "/api/days/"+day+"/lock", nil); response.StatusCode != http.StatusOK {
			t.Fatalf("lock day %s failed with status %d", day, response.StatusCode)
		}
	}

	if response := authedRequest(t, app, authCookie, http.MethodPost, "/api/days/unlock-all", nil); response.StatusCode != http.StatusOK {
		t.Fatalf("unlock-all failed with status %d", response.StatusCode)
	}

	var lockedCount int64
	if err := database.Model(&models.DayStatus{}).Where("user_id = ? AND locked = ?", user.ID, true).Count(&lockedCount).Error; err != nil {
		t.Fatalf("count locked days: %v", err)
	}
	if lockedCount != 0 {
		t.Fatalf("expected no locked days, got %d", lockedCount)
	}
}

func TestInvalidSetSlotParams(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	user := createTestUser(t, database, "slots@example.com", "StrongPass1")
	authCookie := loginAndExtractAuthCookie(t, app, user.Email, "StrongPass1")

	for _, path := range []string{
		"/api/days/0/exercises/0/sets/0",
		"/api/days/abc/exercises/0/sets/0",
		"/api/days/1/exercises/-1/sets/0",
		"/api/days/1/exercises/0/sets/x",
	} {
		response := authedRequest(t, app, authCookie, http.MethodPut, path, map[string]any{"weight": 100.0, "reps": 8})
		if response.StatusCode != http.StatusBadRequest {
			t.Fatalf("expected status 400 for %s, got %d", path, response.StatusCode)
		}
	}
}

func TestListLockedDays(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	user := createTestUser(t, database, "days-overview@example.com", "StrongPass1")
	authCookie := loginAndExtractAuthCookie(t, app, user.Email, "StrongPass1")

	for _, day := range []int{4, 2} {
		if response := authedRequest(t, app, authCookie, http.MethodPost, fmt.Sprintf("/api/days/%d/lock", day), nil); response.StatusCode != http.StatusOK {
			t.Fatalf("lock day %d failed with status %d", day, response.StatusCode)
		}
	}

	response := authedRequest(t, app, authCookie, http.MethodGet, "/api/days", nil)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}

	var overview struct {
		LockedDays []int `json:"locked_days"`
	}
	decodeJSONBody(t, response, &overview)
	if len(overview.LockedDays) != 2 || overview.LockedDays[0] != 2 || overview.LockedDays[1] != 4 {
		t.Fatalf("expected locked days [2 4], got %v", overview.LockedDays)
	}

	if unlockAll := authedRequest(t, app, authCookie, http.MethodPost, "/api/days/unlock-all", nil); unlockAll.StatusCode != http.StatusOK {
		t.Fatalf("unlock-all failed with status %d", unlockAll.StatusCode)
	}

	emptied := authedRequest(t, app, authCookie, http.MethodGet, "/api/days", nil)
	decodeJSONBody(t, emptied, &overview)
	if len(overview.LockedDays) != 0 {
		t.Fatalf("expected no locked days after unlock-all, got %v", overview.LockedDays)
	}
}
