package user

import (
	"github.com/gin-gonic/gin"

	"github.com/AbdelliBrahim0/DashboardAdmin/controller/render"
	"github.com/AbdelliBrahim0/DashboardAdmin/services"
)

func UserController(router *gin.Engine, svc *services.UserService) {
	routes := router.Group("/api/users")
	{
		routes.GET("", func(c *gin.Context) {
			render.GetOrList(c, svc)
		})
		routes.POST("", func(c *gin.Context) {
			render.Create(c, svc)
		})
		routes.PUT("", func(c *gin.Context) {
			render.Update(c, svc)
		})
		routes.DELETE("", func(c *gin.Context) {
			DeleteUser(c, svc)
		})
	}
}

// DeleteUser succeeds whether or not the user exists.
func DeleteUser(c *gin.Context, svc *services.UserService) {
	render.Delete(c, svc, gin.H{"success": true})
}

func RecentUsersController(router *gin.Engine, svc *services.UserService) {
	router.GET("/api/recent-users", func(c *gin.Context) {
		RecentUsers(c, svc)
	})
}
