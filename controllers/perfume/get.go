package perfumecontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/perphorum/perphorum-api/models"
	"gorm.io/gorm"
)

// withCatalogAssociations preloads everything the full perfume view projects:
// ordered ingredients plus reviews with their authors, likes and comments.
func withCatalogAssociations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Ingredients", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("position ASC")
		}).
		Preload("Reviews", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("created_at DESC")
		}).
		Preload("Reviews.Author").
		Preload("Reviews.Likes").
		Preload("Reviews.Comments", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("created_at ASC")
		}).
		Preload("Reviews.Comments.Author")
}

// GetPerfumes returns the whole catalog.
// GET /perfumes
func GetPerfumes(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var perfumes []models.Perfume
		if err := withCatalogAssociations(db).Find(&perfumes).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch perfumes"})
			return
		}
		c.JSON(http.StatusOK, models.NewPerfumeViews(perfumes))
	}
}

// GetPerfumeByID returns a single catalog entry with its reviews.
// GET /perfumes/:id
func GetPerfumeByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid perfume ID"})
			return
		}

		var perfume models.Perfume
		if err := withCatalogAssociations(db).First(&perfume, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Perfume not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve perfume"})
			}
			return
		}
		c.JSON(http.StatusOK, models.NewPerfumeView(&perfume))
	}
}
