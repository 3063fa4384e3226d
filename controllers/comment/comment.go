package commentControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/perphorum/perphorum-api/models"
	"gorm.io/gorm"
)

type CreateCommentInput struct {
	ReviewID uint   `json:"reviewId" binding:"required"`
	UserID   uint   `json:"userId" binding:"required"`
	Text     string `json:"text"`
}

// AddComment appends a comment to an existing review.
// POST /comments
func AddComment(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateCommentInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var review models.Review
		if err := db.First(&review, input.ReviewID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve review"})
			}
			return
		}

		var author models.User
		if err := db.First(&author, input.UserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve user"})
			}
			return
		}

		comment := models.Comment{
			Text:     input.Text,
			UserID:   author.ID,
			ReviewID: review.ID,
		}
		if err := db.Create(&comment).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create comment"})
			return
		}

		comment.Author = author
		c.JSON(http.StatusCreated, models.NewCommentView(&comment))
	}
}

// DeleteComment removes one comment by id. No authorship check: any caller may
// delete any comment, its parent review stays.
// DELETE /comments/:id
func DeleteComment(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid comment ID"})
			return
		}

		var comment models.Comment
		if err := db.First(&comment, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve comment"})
			}
			return
		}

		if err := db.Delete(&comment).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete comment"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Comment deleted"})
	}
}
