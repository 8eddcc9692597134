package transaction

import (
	"github.com/gin-gonic/gin"

	"github.com/AbdelliBrahim0/DashboardAdmin/controller/render"
	"github.com/AbdelliBrahim0/DashboardAdmin/services"
)

func TransactionController(router *gin.Engine, svc *services.TransactionService) {
	routes := router.Group("/api/transactions")
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
			render.Delete(c, svc, gin.H{"success": true})
		})
	}
}
