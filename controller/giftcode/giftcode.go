package giftcode

import (
	"github.com/gin-gonic/gin"

	"github.com/AbdelliBrahim0/DashboardAdmin/controller/render"
	"github.com/AbdelliBrahim0/DashboardAdmin/services"
)

func GiftCodeController(router *gin.Engine, svc *services.GiftCodeService) {
	routes := router.Group("/api/codeCadeau")
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
			render.Delete(c, svc, gin.H{"message": "Gift code deleted"})
		})
	}
}
