package routes

import (
	"github.com/gin-gonic/gin"
	reviewControllers "github.com/perphorum/perphorum-api/controllers/review"
	"gorm.io/gorm"
)

// SetupReviewRoutes registers review creation, deletion, likes and the read
// endpoints (per perfume, per author, friend feed, recent).
func SetupReviewRoutes(r *gin.Engine, db *gorm.DB) {
	reviewGroup := r.Group("/reviews")
	{
		reviewGroup.POST("", reviewControllers.CreateReview(db))              // POST /reviews
		reviewGroup.DELETE("/:id", reviewControllers.DeleteReview(db))        // DELETE /reviews/:id
		reviewGroup.POST("/:reviewId/like", reviewControllers.ToggleLike(db)) // POST /reviews/:reviewId/like?userId=

		reviewGroup.GET("/perfume/:id", reviewControllers.GetReviewsByPerfume(db)) // GET /reviews/perfume/:id
		reviewGroup.GET("/user/:id", reviewControllers.GetReviewsByUser(db))       // GET /reviews/user/:id
		reviewGroup.GET("/feed", reviewControllers.GetFeed(db))                    // GET /reviews/feed?userId=
		reviewGroup.GET("/recent", reviewControllers.GetRecentReviews(db))         // GET /reviews/recent?limit=
	}
}
