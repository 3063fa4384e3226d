package routes

import (
	"github.com/gin-gonic/gin"
	userControllers "github.com/perphorum/perphorum-api/controllers/user"
	"gorm.io/gorm"
)

// SetupUserRoutes registers the user profile, collection and friendship endpoints.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	userGroup := r.Group("/users")
	{
		userGroup.GET("/search", userControllers.SearchUsers(db))          // GET /users/search?query=
		userGroup.GET("/:id", userControllers.GetUserByID(db))             // GET /users/:id
		userGroup.GET("/:id/wishlist", userControllers.GetUserWishlist(db)) // GET /users/:id/wishlist
		userGroup.GET("/:id/owned", userControllers.GetUserOwned(db))      // GET /users/:id/owned
		userGroup.GET("/:id/friends", userControllers.GetUserFriends(db))  // GET /users/:id/friends

		userGroup.POST("/wishlist", userControllers.ToggleWishlist(db)) // POST /users/wishlist?userId=&perfumeId=
		userGroup.POST("/owned", userControllers.ToggleOwned(db))       // POST /users/owned?userId=&perfumeId=
		userGroup.POST("/friend", userControllers.ToggleFriend(db))     // POST /users/friend?myId=&targetId=
	}
}
