package merchant

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AbdelliBrahim0/DashboardAdmin/controller/render"
	"github.com/AbdelliBrahim0/DashboardAdmin/dto"
	"github.com/AbdelliBrahim0/DashboardAdmin/model"
	"github.com/AbdelliBrahim0/DashboardAdmin/services"
	"github.com/AbdelliBrahim0/DashboardAdmin/store"
)

func MerchantController(router *gin.Engine, svc *services.MerchantService) {
	routes := router.Group("/api/merchants")
	{
		routes.GET("", func(c *gin.Context) {
			GetMerchants(c, svc)
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
		routes.GET("/duplicates", func(c *gin.Context) {
			GetDuplicates(c, svc)
		})
	}
}

// GetMerchants looks a merchant up by ?email= (merging duplicates), by ?id=, or
// lists them all with their uniqueId.
func GetMerchants(c *gin.Context, svc *services.MerchantService) {
	var query dto.MerchantLookupQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format"})
		return
	}

	if query.Email != "" {
		id, rec, err := svc.FindByEmail(c.Request.Context(), query.Email)
		if err != nil {
			render.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, render.Record(id, rec))
		return
	}

	if query.ID != "" {
		rec, err := svc.Get(c.Request.Context(), query.ID)
		if err != nil {
			render.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, render.Record(query.ID, rec))
		return
	}

	entries, err := svc.List(c.Request.Context())
	if err != nil {
		render.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, render.Records(entries, func(id string, rec store.Record, out gin.H) {
		out[model.FieldUniqueID] = services.UniqueID(id, rec)
	}))
}

func GetDuplicates(c *gin.Context, svc *services.MerchantService) {
	groups, err := svc.Duplicates(c.Request.Context())
	if err != nil {
		render.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, groups)
}
