package middleware

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"libeasy/internal/adapters/persistence/models"
	"libeasy/internal/adapters/persistence/repositories"
	"libeasy/internal/config"
	"libeasy/internal/core/domain"
	"libeasy/internal/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testSecret = "test-secret"

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, models.AutoMigrate(db))

	cfg := &config.Config{
		AppMode: "dev",
		JWT:     config.JWTConfig{Secret: testSecret, ExpiryHours: 24},
	}

	app := fiber.New()
	protected := Protected(cfg, repositories.NewUserRepository(db))

	app.Get("/me", protected, func(c *fiber.Ctx) error {
		return c.JSON(CurrentUser(c).ToResponse())
	})
	app.Get("/staff", protected, StaffOnly(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	app.Get("/admin", protected, AdminOnly(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	return app, db
}

func seedUser(t *testing.T, db *gorm.DB, email string, role domain.Role) {
	t.Helper()
	require.NoError(t, db.Create(&models.User{
		Name:     "Test User",
		Email:    email,
		Role:     role.String(),
		Password: "irrelevant",
	}).Error)
}

func doGet(t *testing.T, app *fiber.App, path, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestProtectedRequiresToken(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doGet(t, app, "/me", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProtectedRejectsExpiredToken(t *testing.T) {
	app, db := newTestApp(t)
	seedUser(t, db, "alice@example.com", domain.RoleLibrarian)

	token, err := jwt.Generate("alice@example.com", testSecret, -1)
	require.NoError(t, err)

	resp := doGet(t, app, "/me", token)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProtectedRejectsUnknownSubject(t *testing.T) {
	app, _ := newTestApp(t)

	// Valid signature, but no such user in the database
	token, err := jwt.Generate("ghost@example.com", testSecret, 24)
	require.NoError(t, err)

	resp := doGet(t, app, "/me", token)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProtectedAcceptsValidToken(t *testing.T) {
	app, db := newTestApp(t)
	seedUser(t, db, "alice@example.com", domain.RoleLibrarian)

	token, err := jwt.Generate("alice@example.com", testSecret, 24)
	require.NoError(t, err)

	resp := doGet(t, app, "/me", token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRoleEnforcement(t *testing.T) {
	app, db := newTestApp(t)
	seedUser(t, db, "lib@example.com", domain.RoleLibrarian)
	seedUser(t, db, "admin@example.com", domain.RoleAdmin)
	seedUser(t, db, "student@example.com", domain.RoleStudent)

	libToken, err := jwt.Generate("lib@example.com", testSecret, 24)
	require.NoError(t, err)
	adminToken, err := jwt.Generate("admin@example.com", testSecret, 24)
	require.NoError(t, err)
	studentToken, err := jwt.Generate("student@example.com", testSecret, 24)
	require.NoError(t, err)

	// Librarian can reach staff routes but not admin routes
	assert.Equal(t, http.StatusOK, doGet(t, app, "/staff", libToken).StatusCode)
	assert.Equal(t, http.StatusForbidden, doGet(t, app, "/admin", libToken).StatusCode)

	// Admin can reach both
	assert.Equal(t, http.StatusOK, doGet(t, app, "/staff", adminToken).StatusCode)
	assert.Equal(t, http.StatusOK, doGet(t, app, "/admin", adminToken).StatusCode)

	// Student role can reach neither
	assert.Equal(t, http.StatusForbidden, doGet(t, app, "/staff", studentToken).StatusCode)
	assert.Equal(t, http.StatusForbidden, doGet(t, app, "/admin", studentToken).StatusCode)
}
