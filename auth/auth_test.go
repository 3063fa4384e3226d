package auth_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/perphorum/perphorum-api/auth"
	"github.com/perphorum/perphorum-api/database"
	"github.com/perphorum/perphorum-api/models"
	"github.com/perphorum/perphorum-api/routes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

func setupTest(t *testing.T) (*gorm.DB, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret")

	db, err := gorm.Open(sqlite.Dialector{
		DriverName: "sqlite",
		DSN:        filepath.Join(t.TempDir(), "test.db"),
	}, &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	r := gin.New()
	routes.SetupAuthRoutes(r, db)
	return db, r
}

func post(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegister(t *testing.T) {
	db, r := setupTest(t)

	w := post(r, "/auth/register", `{"username": "maciej", "password": "maciej123"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp auth.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "maciej", resp.Username)
	assert.Equal(t, models.RoleUser, resp.Role)

	// password is stored hashed, never plain
	var user models.User
	require.NoError(t, db.First(&user, resp.UserID).Error)
	assert.NotEqual(t, "maciej123", user.Password)
}

func TestRegisterUsernameTaken(t *testing.T) {
	_, r := setupTest(t)

	w := post(r, "/auth/register", `{"username": "maciej", "password": "a"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = post(r, "/auth/register", `{"username": "maciej", "password": "b"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin(t *testing.T) {
	_, r := setupTest(t)

	w := post(r, "/auth/register", `{"username": "maciej", "password": "maciej123"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = post(r, "/auth/login", `{"username": "maciej", "password": "maciej123"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp auth.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)

	w = post(r, "/auth/login", `{"username": "maciej", "password": "wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = post(r, "/auth/login", `{"username": "nobody", "password": "x"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
