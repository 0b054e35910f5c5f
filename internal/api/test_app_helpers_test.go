package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Superak0s/SuperGym-App-sub001/internal/db"
	"github.com/Superak0s/SuperGym-App-sub001/internal/models"
	"github.com/Superak0s/SuperGym-App-sub001/internal/services"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type noopNotifier struct{}

func (noopNotifier) Notify(ctx context.Context, userID uint, message string) error { return nil }

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	return newTestAppWithSyncTarget(t, nil)
}

func newTestAppWithSyncTarget(t *testing.T, syncTarget services.SyncTarget) (*fiber.App, *gorm.DB) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "supergym-test.db")
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

	scheduler := services.NewReminderScheduler(db.NewCreatineRepository(database), noopNotifier{}, time.UTC)
	handler := NewHandler(database, "test-secret-key", time.UTC, scheduler, syncTarget, false)

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, database
}

func createTestUser(t *testing.T, database *gorm.DB, email string, password string) models.User {
	t.Helper()

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	user := models.User{
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: string(passwordHash),
		DisplayName:  "Test Lifter",
		CreatedAt:    time.Now().UTC(),
	}
	if err := database.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func loginAndExtractAuthCookie(t *testing.T, app *fiber.App, email string, password string) string {
	t.Helper()

	body := jsonBody(t, map[string]any{"email": email, "password": password})
	request := httptest.NewRequest(http.MethodPost, "/api/auth/login", body)
	request.Header.Set("Content-Type", fiber.MIMEApplicationJSON)

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("login request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected login status 200, got %d", response.StatusCode)
	}

	for _, cookie := range response.Cookies() {
		if cookie.Name == authCookieName && cookie.Value != "" {
			return cookie.Name + "=" + cookie.Value
		}
	}

	t.Fatal("auth cookie is missing in login response")
	return ""
}

func jsonBody(t *testing.T, payload any) *bytes.Reader {
	t.Helper()

	encoded, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	return bytes.NewReader(encoded)
}

func authedRequest(t *testing.T, app *fiber.App, authCookie string, method string, path string, payload any) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		body = jsonBody(t, payload)
	}
	request := httptest.NewRequest(method, path, body)
	request.Header.Set("Cookie", authCookie)
	if payload != nil {
		request.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	t.Cleanup(func() {
		_ = response.Body.Close()
	})
	return response
}

func decodeJSONBody(t *testing.T, response *http.Response, target any) {
	t.Helper()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	if err := json.Unmarshal(body, target); err != nil {
		t.Fatalf("decode response %q: %v", string(body), err)
	}
}
