package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/mindguard/internal/db"
	"github.com/terraincognita07/mindguard/internal/models"
	"gorm.io/gorm"
)

const (
	testSecretKey = "test-secret-key-with-at-least-32-bytes"
	testPassword  = "StrongPass1"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "mindguard-api-test.db")
	database, err := db.OpenSQLite(databasePath, nil)
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

	handler, err := NewHandler(database, Options{SecretKey: testSecretKey, Location: time.UTC})
	if err != nil {
		t.Fatalf("init handler: %v", err)
	}

	app := fiber.New()
	app.Use(handler.RequestLogger)
	RegisterRoutes(app, handler)
	app.Use(handler.NotFound)
	return app, database
}

func doJSON(t *testing.T, app *fiber.App, method string, path string, token string, payload any) (int, []byte) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, body)
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	defer response.Body.Close()

	raw, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("%s %s read body failed: %v", method, path, err)
	}
	return response.StatusCode, raw
}

func decodeJSON(t *testing.T, raw []byte, target any) {
	t.Helper()
	if err := json.Unmarshal(raw, target); err != nil {
		t.Fatalf("decode json %q: %v", string(raw), err)
	}
}

func readAPIError(t *testing.T, raw []byte) string {
	t.Helper()
	payload := map[string]string{}
	decodeJSON(t, raw, &payload)
	return payload["error"]
}

func registerAndLogin(t *testing.T, app *fiber.App, email string) string {
	t.Helper()

	status, raw := doJSON(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"email":       email,
		"password":    testPassword,
		"displayName": "Test User",
	})
	if status != fiber.StatusCreated {
		t.Fatalf("register %s expected 201, got %d: %s", email, status, string(raw))
	}

	response := authResponse{}
	decodeJSON(t, raw, &response)
	if response.Token == "" {
		t.Fatalf("register %s returned empty token", email)
	}
	return response.Token
}

func promoteToCounselor(t *testing.T, database *gorm.DB, email string) {
	t.Helper()
	result := database.Model(&models.User{}).Where("email = ?", email).Update("role", models.RoleCounselor)
	if result.Error != nil || result.RowsAffected != 1 {
		t.Fatalf("promote %s: %v (rows %d)", email, result.Error, result.RowsAffected)
	}
}

func findUserByEmail(t *testing.T, database *gorm.DB, email string) models.User {
	t.Helper()
	user := models.User{}
	if err := database.Where("email = ?", email).First(&user).Error; err != nil {
		t.Fatalf("load user %s: %v", email, err)
	}
	return user
}

func testDay(offset int) string {
	return time.Now().UTC().AddDate(0, 0, offset).Format("2006-01-02")
}

func moodPayload(mood int, sadness int) fiber.Map {
	return fiber.Map{
		"overallMood":        mood,
		"energy":             5,
		"sleep":              6,
		"depressiveSymptoms": fiber.Map{"sadness": sadness},
		"anxietySymptoms":    fiber.Map{},
		"stressIndicators":   fiber.Map{},
		"activities":         []string{"exercise"},
		"notes":              "walked outside",
	}
}
