package userControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/perphorum/perphorum-api/models"
	"gorm.io/gorm"
)

// ToggleWishlist flips a perfume's membership in the user's wishlist.
// POST /users/wishlist?userId=&perfumeId=
func ToggleWishlist(db *gorm.DB) gin.HandlerFunc {
	return togglePerfumeSet(db, "WishlistPerfumes", "user_wishlist",
		"Added to wishlist", "Removed from wishlist")
}

// ToggleOwned flips a perfume's membership in the user's owned collection.
// POST /users/owned?userId=&perfumeId=
func ToggleOwned(db *gorm.DB) gin.HandlerFunc {
	return togglePerfumeSet(db, "OwnedPerfumes", "user_owned",
		"Added to owned collection", "Removed from owned collection")
}

// togglePerfumeSet is the shared add-if-absent/remove-if-present mutation for
// the two user-to-perfume membership sets. Plain read-modify-write, last write
// wins when two toggles race.
func togglePerfumeSet(db *gorm.DB, association, joinTable, addedMsg, removedMsg string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := strconv.Atoi(c.Query("userId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid userId"})
			return
		}
		perfumeID, err := strconv.Atoi(c.Query("perfumeId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid perfumeId"})
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

		var perfume models.Perfume
		if err := db.First(&perfume, perfumeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Perfume not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve perfume"})
			}
			return
		}

		var n int64
		if err := db.Table(joinTable).
			Where("user_id = ? AND perfume_id = ?", user.ID, perfume.ID).
			Count(&n).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check membership"})
			return
		}

		if n > 0 {
			if err := db.Model(&user).Association(association).Delete(&perfume); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update collection"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"message": removedMsg})
			return
		}

		if err := db.Model(&user).Association(association).Append(&perfume); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update collection"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": addedMsg})
	}
}
