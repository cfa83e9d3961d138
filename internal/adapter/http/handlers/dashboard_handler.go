package handlers

import (
	"net/http"
	"time"

	response "atelie/internal/adapter/http/dto/response"
	"atelie/internal/adapter/http/middleware"
	"atelie/internal/usecase"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
	loc     *time.Location
}

func NewDashboardHandler(uc usecase.IDashboardUseCase, loc *time.Location) *DashboardHandler {
	return &DashboardHandler{usecase: uc, loc: loc}
}

// Summary godoc
// @Summary  Admin dashboard counters and recent orders
// @Tags     admin
// @Produce  json
// @Success  200  {object}  response.DashboardResponse
// @Security BearerAuth
// @Router   /admin/dashboard [get]
func (h *DashboardHandler) Summary(c *gin.Context) {
	summary, err := h.usecase.Summary(c.Request.Context(), middleware.Actor(c))
	if err != nil {
		appErr, ok := mapCommonError(err)
		if !ok {
			appErr = internalError(err)
		}
		renderError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, response.FromDashboard(summary, h.loc))
}
