package perfumecontroller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/perphorum/perphorum-api/models"
	"gorm.io/gorm"
)

// LOWER(...) LIKE keeps the case-insensitive matching portable between the
// Postgres deployment and the sqlite-backed tests.

// SearchPerfumesByName matches a substring of the display name.
// GET /perfumes/search?text=
func SearchPerfumesByName(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		text := c.Query("text")
		pattern := "%" + strings.ToLower(text) + "%"

		var perfumes []models.Perfume
		if err := withCatalogAssociations(db).
			Where("LOWER(name) LIKE ?", pattern).
			Find(&perfumes).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search perfumes"})
			return
		}
		c.JSON(http.StatusOK, models.NewPerfumeViews(perfumes))
	}
}

// GetPerfumesByBrand matches the brand exactly, ignoring case.
// GET /perfumes/brand/:brand
func GetPerfumesByBrand(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		brand := c.Param("brand")

		var perfumes []models.Perfume
		if err := withCatalogAssociations(db).
			Where("LOWER(brand) = ?", strings.ToLower(brand)).
			Find(&perfumes).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch perfumes"})
			return
		}
		c.JSON(http.StatusOK, models.NewPerfumeViews(perfumes))
	}
}

// GetPerfumesByGender matches the gender classification exactly, ignoring case.
// GET /perfumes/gender/:gender
func GetPerfumesByGender(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		gender := c.Param("gender")

		var perfumes []models.Perfume
		if err := withCatalogAssociations(db).
			Where("LOWER(gender) = ?", strings.ToLower(gender)).
			Find(&perfumes).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch perfumes"})
			return
		}
		c.JSON(http.StatusOK, models.NewPerfumeViews(perfumes))
	}
}

// GetPerfumesByIngredient matches a substring across the ingredient list.
// GET /perfumes/ingredient?name=
func GetPerfumesByIngredient(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Query("name")
		pattern := "%" + strings.ToLower(name) + "%"

		// Subquery keeps perfumes unique when several ingredient rows match.
		matching := db.Model(&models.PerfumeIngredient{}).
			Select("perfume_id").
			Where("LOWER(name) LIKE ?", pattern)

		var perfumes []models.Perfume
		if err := withCatalogAssociations(db).
			Where("id IN (?)", matching).
			Find(&perfumes).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch perfumes"})
			return
		}
		c.JSON(http.StatusOK, models.NewPerfumeViews(perfumes))
	}
}
