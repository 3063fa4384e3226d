package routes

import (
	"github.com/gin-gonic/gin"
	perfumeControllers "github.com/perphorum/perphorum-api/controllers/perfume"
	"github.com/perphorum/perphorum-api/middleware"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers the API-key-protected admin endpoints.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		adminGroup.GET("/perfumes/export", perfumeControllers.ExportPerfumesToExcel(db)) // GET /admin/perfumes/export
	}
}
