package routes

import (
	"github.com/gin-gonic/gin"
	perfumeControllers "github.com/perphorum/perphorum-api/controllers/perfume"
	"gorm.io/gorm"
)

// SetupPerfumeRoutes registers the public catalog endpoints.
func SetupPerfumeRoutes(r *gin.Engine, db *gorm.DB) {
	perfumeGroup := r.Group("/perfumes")
	{
		perfumeGroup.GET("", perfumeControllers.GetPerfumes(db))                       // GET /perfumes
		perfumeGroup.GET("/search", perfumeControllers.SearchPerfumesByName(db))       // GET /perfumes/search?text=
		perfumeGroup.GET("/ingredient", perfumeControllers.GetPerfumesByIngredient(db)) // GET /perfumes/ingredient?name=
		perfumeGroup.GET("/brand/:brand", perfumeControllers.GetPerfumesByBrand(db))   // GET /perfumes/brand/:brand
		perfumeGroup.GET("/gender/:gender", perfumeControllers.GetPerfumesByGender(db)) // GET /perfumes/gender/:gender
		perfumeGroup.GET("/:id", perfumeControllers.GetPerfumeByID(db))                // GET /perfumes/:id
	}
}
