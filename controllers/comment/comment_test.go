package commentControllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
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

	db, err := gorm.Open(sqlite.Dialector{
		DriverName: "sqlite",
		DSN:        filepath.Join(t.TempDir(), "test.db"),
	}, &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	r := gin.New()
	routes.SetupCommentRoutes(r, db)
	return db, r
}

func seedReview(t *testing.T, db *gorm.DB) (models.User, models.Review) {
	t.Helper()
	user := models.User{Username: "maciej", Password: "x", Role: models.RoleUser}
	require.NoError(t, db.Create(&user).Error)
	perfume := models.Perfume{Brand: "Dior", Name: "Sauvage"}
	require.NoError(t, db.Create(&perfume).Error)
	review := models.Review{Rating: 5, Text: "great", UserID: user.ID, PerfumeID: perfume.ID}
	require.NoError(t, db.Create(&review).Error)
	return user, review
}

func perform(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAddComment(t *testing.T) {
	db, r := setupTest(t)
	user, review := seedReview(t, db)

	body := fmt.Sprintf(`{"reviewId": %d, "userId": %d, "text": "well said"}`, review.ID, user.ID)
	w := perform(r, http.MethodPost, "/comments", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var view models.CommentView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.Equal(t, "well said", view.Text)
	assert.Equal(t, "maciej", view.Author.Username)
	assert.False(t, view.CreatedAt.IsZero())
}

func TestAddCommentUnknownIDs(t *testing.T) {
	db, r := setupTest(t)
	user, review := seedReview(t, db)

	w := perform(r, http.MethodPost, "/comments",
		fmt.Sprintf(`{"reviewId": 999, "userId": %d, "text": "x"}`, user.ID))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = perform(r, http.MethodPost, "/comments",
		fmt.Sprintf(`{"reviewId": %d, "userId": 999, "text": "x"}`, review.ID))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteCommentKeepsReview(t *testing.T) {
	db, r := setupTest(t)
	user, review := seedReview(t, db)

	comment := models.Comment{Text: "c", UserID: user.ID, ReviewID: review.ID}
	require.NoError(t, db.Create(&comment).Error)

	w := perform(r, http.MethodDelete, fmt.Sprintf("/comments/%d", comment.ID), "")
	require.Equal(t, http.StatusOK, w.Code)

	var comments, reviews int64
	require.NoError(t, db.Model(&models.Comment{}).Count(&comments).Error)
	require.NoError(t, db.Model(&models.Review{}).Count(&reviews).Error)
	assert.Zero(t, comments)
	assert.Equal(t, int64(1), reviews)
}

func TestDeleteCommentNotFound(t *testing.T) {
	_, r := setupTest(t)
	w := perform(r, http.MethodDelete, "/comments/999", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
