package reviewControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/perphorum/perphorum-api/models"
	"gorm.io/gorm"
)

// GetReviewsByPerfume returns all reviews of one perfume, storage order.
// GET /reviews/perfume/:id
func GetReviewsByPerfume(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		perfumeID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid perfume ID"})
			return
		}

		var perfume models.Perfume
		if err := db.First(&perfume, perfumeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Perfume not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve perfume"})
			}
			return
		}

		var reviews []models.Review
		if err := withReviewAssociations(db).
			Where("perfume_id = ?", perfume.ID).
			Find(&reviews).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
			return
		}
		c.JSON(http.StatusOK, models.NewReviewViews(reviews))
	}
}

// GetReviewsByUser returns one author's reviews, newest first.
// GET /reviews/user/:id
func GetReviewsByUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
			return
		}

		var user models.User
		if err := db.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve user"})
			}
			return
		}

		var reviews []models.Review
		if err := withReviewAssociations(db).
			Where("user_id = ?", user.ID).
			Order("created_at DESC").
			Find(&reviews).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
			return
		}
		c.JSON(http.StatusOK, models.NewReviewViews(reviews))
	}
}

// GetRecentReviews returns the newest reviews, truncated to limit (default 6,
// no upper bound).
// GET /reviews/recent?limit=
func GetRecentReviews(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, err := strconv.Atoi(c.DefaultQuery("limit", "6"))
		if err != nil || limit < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}

		var reviews []models.Review
		if err := withReviewAssociations(db).
			Order("created_at DESC").
			Limit(limit).
			Find(&reviews).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
			return
		}
		c.JSON(http.StatusOK, models.NewReviewViews(reviews))
	}
}
