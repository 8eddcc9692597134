package user

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AbdelliBrahim0/DashboardAdmin/controller/render"
	"github.com/AbdelliBrahim0/DashboardAdmin/dto"
	"github.com/AbdelliBrahim0/DashboardAdmin/services"
)

func RecentUsers(c *gin.Context, svc *services.UserService) {
	var query dto.RecentUsersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "limit must be between 1 and 50"})
		return
	}
	if query.Limit == 0 {
		query.Limit = services.DefaultRecentUsers
	}

	users, err := svc.Recent(c.Request.Context(), query.Limit)
	if err != nil {
		render.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}
