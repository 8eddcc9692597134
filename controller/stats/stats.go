package stats

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AbdelliBrahim0/DashboardAdmin/controller/render"
	"github.com/AbdelliBrahim0/DashboardAdmin/services"
)

func StatsController(router *gin.Engine, svc *services.StatsService) {
	router.GET("/api/stats", func(c *gin.Context) {
		GetStats(c, svc)
	})
}

func GetStats(c *gin.Context, svc *services.StatsService) {
	stats, err := svc.Stats(c.Request.Context())
	if err != nil {
		render.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
