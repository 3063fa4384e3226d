package reviewControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/perphorum/perphorum-api/models"
	"gorm.io/gorm"
)

// GetFeed returns every review authored by the user's friend set, newest
// first. An empty friend set yields an empty array, not an error.
// GET /reviews/feed?userId=
func GetFeed(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := strconv.Atoi(c.Query("userId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid userId"})
			return
		}

		var me models.User
		if err := db.Preload("Friends").First(&me, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve user"})
			}
			return
		}

		if len(me.Friends) == 0 {
			c.JSON(http.StatusOK, []models.ReviewView{})
			return
		}

		friendIDs := make([]uint, 0, len(me.Friends))
		for _, f := range me.Friends {
			friendIDs = append(friendIDs, f.ID)
		}

		var reviews []models.Review
		if err := withReviewAssociations(db).
			Where("user_id IN ?", friendIDs).
			Order("created_at DESC").
			Find(&reviews).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch feed"})
			return
		}
		c.JSON(http.StatusOK, models.NewReviewViews(reviews))
	}
}
