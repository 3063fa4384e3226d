package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry point that wires up all route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	SetupAuthRoutes(r, db)
	SetupPerfumeRoutes(r, db)
	SetupUserRoutes(r, db)
	SetupReviewRoutes(r, db)
	SetupCommentRoutes(r, db)
	SetupAdminRoutes(r, db)
}
