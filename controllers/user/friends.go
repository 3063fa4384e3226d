package userControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/perphorum/perphorum-api/models"
	"gorm.io/gorm"
)

// ToggleFriend flips a directed friendship edge. Only the initiator's edge set
// is mutated; the target's set never changes.
// POST /users/friend?myId=&targetId=
func ToggleFriend(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		myID, err := strconv.Atoi(c.Query("myId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid myId"})
			return
		}
		targetID, err := strconv.Atoi(c.Query("targetId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid targetId"})
			return
		}

		if myID == targetID {
			c.JSON(http.StatusBadRequest, gin.H{"error": "You cannot add yourself as a friend"})
			return
		}

		var me models.User
		if err := db.First(&me, myID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve user"})
			}
			return
		}

		var target models.User
		if err := db.First(&target, targetID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Target user not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve user"})
			}
			return
		}

		var n int64
		if err := db.Table("user_friends").
			Where("user_id = ? AND friend_id = ?", me.ID, target.ID).
			Count(&n).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check friendship"})
			return
		}

		if n > 0 {
			if err := db.Model(&me).Association("Friends").Delete(&target); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update friends"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"message": "Removed friend: " + target.Username})
			return
		}

		if err := db.Model(&me).Association("Friends").Append(&target); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update friends"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Added friend: " + target.Username})
	}
}
