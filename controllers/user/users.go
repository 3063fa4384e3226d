package userControllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/perphorum/perphorum-api/models"
	"gorm.io/gorm"
)

// SearchUsers matches a substring of the username, ignoring case.
// GET /users/search?query=
func SearchUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := c.Query("query")
		pattern := "%" + strings.ToLower(query) + "%"

		var users []*models.User
		if err := db.Where("LOWER(username) LIKE ?", pattern).Find(&users).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search users"})
			return
		}
		c.JSON(http.StatusOK, models.SummarizeUsers(users))
	}
}

// GetUserByID returns the public summary of one user.
// GET /users/:id
func GetUserByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
			return
		}

		var user models.User
		if err := db.First(&user, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve user"})
			}
			return
		}
		c.JSON(http.StatusOK, models.SummarizeUser(&user))
	}
}

// GetUserWishlist returns the perfumes on a user's wishlist.
// GET /users/:id/wishlist
func GetUserWishlist(db *gorm.DB) gin.HandlerFunc {
	return getPerfumeSet(db, "user_wishlist")
}

// GetUserOwned returns the perfumes a user owns.
// GET /users/:id/owned
func GetUserOwned(db *gorm.DB) gin.HandlerFunc {
	return getPerfumeSet(db, "user_owned")
}

func getPerfumeSet(db *gorm.DB, joinTable string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
			return
		}

		var user models.User
		if err := db.First(&user, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve user"})
			}
			return
		}

		var perfumes []models.Perfume
		if err := db.
			Preload("Ingredients", func(tx *gorm.DB) *gorm.DB {
				return tx.Order("position ASC")
			}).
			Joins("JOIN "+joinTable+" jt ON jt.perfume_id = perfumes.id").
			Where("jt.user_id = ?", user.ID).
			Find(&perfumes).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch perfumes"})
			return
		}
		c.JSON(http.StatusOK, models.NewPerfumeViews(perfumes))
	}
}

// GetUserFriends returns the users this user follows as friends.
// GET /users/:id/friends
func GetUserFriends(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
			return
		}

		var user models.User
		if err := db.Preload("Friends").First(&user, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve user"})
			}
			return
		}
		c.JSON(http.StatusOK, models.SummarizeUsers(user.Friends))
	}
}
