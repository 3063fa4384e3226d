package routes

import (
	"github.com/gin-gonic/gin"
	commentControllers "github.com/perphorum/perphorum-api/controllers/comment"
	"gorm.io/gorm"
)

// SetupCommentRoutes registers the comment lifecycle endpoints.
func SetupCommentRoutes(r *gin.Engine, db *gorm.DB) {
	commentGroup := r.Group("/comments")
	{
		commentGroup.POST("", commentControllers.AddComment(db))       // POST /comments
		commentGroup.DELETE("/:id", commentControllers.DeleteComment(db)) // DELETE /comments/:id
	}
}
