package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"testing"

	"blogapi/backend/config"
	"blogapi/backend/models"
	"blogapi/backend/routes"
	"blogapi/backend/storage"
	"blogapi/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestEnv wires a full app against the test database, wiping all
// rows first. Tests are skipped when Postgres is not reachable.
func newTestEnv(t *testing.T) (*fiber.App, *gorm.DB, *config.Config) {
	t.Helper()

	cfg := &config.Config{
		DBHost:        envOr("TEST_DB_HOST", "localhost"),
		DBPort:        envOr("TEST_DB_PORT", "5432"),
		DBUser:        envOr("TEST_DB_USER", "postgres"),
		DBPassword:    envOr("TEST_DB_PASSWORD", "postgres"),
		DBName:        envOr("TEST_DB_NAME", "blog_test"),
		JWTSecret:     "testsecret",
		UploadDir:     t.TempDir(),
		AdminUsername: "admin",
		AdminPassword: "password",
	}

	db, err := utils.InitDB(cfg)
	if err != nil {
		t.Skipf("postgres not available: %v", err)
	}

	require.NoError(t, db.Exec("DELETE FROM comments").Error)
	require.NoError(t, db.Exec("DELETE FROM articles").Error)
	require.NoError(t, db.Exec("DELETE FROM users").Error)
	require.NoError(t, utils.SeedAdmin(db, cfg))

	store, err := storage.NewLocalStorage(cfg.UploadDir)
	require.NoError(t, err)

	app := fiber.New()
	routes.SetupRoutes(app, db, cfg, store)

	return app, db, cfg
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func envOr(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func adminToken(t *testing.T, cfg *config.Config) string {
	t.Helper()

	token, err := utils.GenerateToken(cfg.AdminUsername, cfg)
	require.NoError(t, err)
	return token
}

func jsonRequest(t *testing.T, method, target string, payload interface{}) *http.Request {
	t.Helper()

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(data)
	}

	req := httptest.NewRequest(method, target, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()

	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	resp.Body.Close()
}

func seedComment(t *testing.T, db *gorm.DB, articleID uint, status models.CommentStatus) models.Comment {
	t.Helper()

	comment := models.Comment{
		Author:    "Jo",
		Email:     "jo@example.com",
		Content:   "seeded comment",
		ArticleID: articleID,
		Status:    status,
	}
	require.NoError(t, db.Create(&comment).Error)
	return comment
}
