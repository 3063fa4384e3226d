package reviewControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/perphorum/perphorum-api/models"
	"gorm.io/gorm"
)

type CreateReviewInput struct {
	PerfumeID uint   `json:"perfumeId" binding:"required"`
	UserID    uint   `json:"userId" binding:"required"`
	Text      string `json:"text"`
	Rating    int    `json:"rating"` // any integer accepted, stored as-is
}

// withReviewAssociations preloads what the review view projects.
func withReviewAssociations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Author").
		Preload("Subject").
		Preload("Likes").
		Preload("Comments", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("created_at ASC")
		}).
		Preload("Comments.Author")
}

// CreateReview persists one user's review of one perfume. A second review for
// the same (author, subject) pair is rejected with 409; the unique index on
// that pair backstops the check when two creates race.
// POST /reviews
func CreateReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateReviewInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var perfume models.Perfume
		if err := db.First(&perfume, input.PerfumeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Perfume not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve perfume"})
			}
			return
		}

		var user models.User
		if err := db.First(&user, input.UserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve user"})
			}
			return
		}

		var n int64
		if err := db.Model(&models.Review{}).
			Where("user_id = ? AND perfume_id = ?", user.ID, perfume.ID).
			Count(&n).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check existing reviews"})
			return
		}
		if n > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "You have already reviewed " + perfume.Name})
			return
		}

		review := models.Review{
			Rating:    input.Rating,
			Text:      input.Text,
			UserID:    user.ID,
			PerfumeID: perfume.ID,
		}
		if err := db.Create(&review).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				c.JSON(http.StatusConflict, gin.H{"error": "You have already reviewed " + perfume.Name})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create review"})
			return
		}

		review.Author = user
		review.Subject = perfume
		c.JSON(http.StatusCreated, models.NewReviewView(&review))
	}
}

// DeleteReview removes a review together with its comments and like rows.
// DELETE /reviews/:id
func DeleteReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid review ID"})
			return
		}

		var review models.Review
		if err := db.First(&review, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve review"})
			}
			return
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("review_id = ?", review.ID).Delete(&models.Comment{}).Error; err != nil {
				return err
			}
			if err := tx.Exec("DELETE FROM review_likes WHERE review_id = ?", review.ID).Error; err != nil {
				return err
			}
			return tx.Delete(&review).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete review"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Review deleted"})
	}
}
