package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/perphorum/perphorum-api/auth"
	"gorm.io/gorm"
)

// SetupAuthRoutes registers the public registration and login endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", auth.Register(db))
		authGroup.POST("/login", auth.Login(db))
	}
}
