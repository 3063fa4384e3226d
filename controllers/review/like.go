package reviewControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/perphorum/perphorum-api/models"
	"gorm.io/gorm"
)

// ToggleLike flips a user's like on a review and returns the resulting count.
// POST /reviews/:reviewId/like?userId=
func ToggleLike(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		reviewID, err := strconv.Atoi(c.Param("reviewId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid review ID"})
			return
		}
		userID, err := strconv.Atoi(c.Query("userId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid userId"})
			return
		}

		var review models.Review
		if err := db.First(&review, reviewID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve review"})
			}
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

		var n int64
		if err := db.Table("review_likes").
			Where("review_id = ? AND user_id = ?", review.ID, user.ID).
			Count(&n).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check like"})
			return
		}

		if n > 0 {
			if err := db.Model(&review).Association("Likes").Delete(&user); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update likes"})
				return
			}
		} else {
			if err := db.Model(&review).Association("Likes").Append(&user); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update likes"})
				return
			}
		}

		count := db.Model(&review).Association("Likes").Count()
		c.JSON(http.StatusOK, gin.H{"likesCount": count})
	}
}
