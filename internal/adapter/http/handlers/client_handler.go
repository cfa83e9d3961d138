package handlers

import (
	"net/http"
	"time"

	request "atelie/internal/adapter/http/dto/request"
	response "atelie/internal/adapter/http/dto/response"
	"atelie/internal/adapter/http/middleware"
	"atelie/internal/domain/entities"
	"atelie/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ClientHandler struct {
	usecase usecase.IClientUseCase
	loc     *time.Location
}

func NewClientHandler(uc usecase.IClientUseCase, loc *time.Location) *ClientHandler {
	return &ClientHandler{usecase: uc, loc: loc}
}

// List godoc
// @Summary  List clients, newest first
// @Tags     admin-clients
// @Produce  json
// @Param    search  query     string  false  "Name, e-mail or phone"
// @Success  200     {array}   response.ClientResponse
// @Security BearerAuth
// @Router   /admin/clients [get]
func (h *ClientHandler) List(c *gin.Context) {
	var q request.ClientListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		renderError(c, errInvalidPayload)
		return
	}
	clients, err := h.usecase.List(c.Request.Context(), middleware.Actor(c), q.ToQuery())
	if err != nil {
		renderError(c, mapClientError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromClients(clients, h.loc))
}

// Get godoc
// @Summary  Get a client with its orders
// @Tags     admin-clients
// @Produce  json
// @Param    id   path      string  true  "Client ID"
// @Success  200  {object}  response.ClientDetailResponse
// @Failure  404  {object}  pkg.HTTPError
// @Security BearerAuth
// @Router   /admin/clients/{id} [get]
func (h *ClientHandler) Get(c *gin.Context) {
	detail, err := h.usecase.GetDetail(c.Request.Context(), middleware.Actor(c), entities.ClientID(c.Param("id")))
	if err != nil {
		renderError(c, mapClientError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromClientDetail(detail, h.loc))
}

// Delete godoc
// @Summary  Delete a client record (its orders are kept)
// @Tags     admin-clients
// @Param    id  path  string  true  "Client ID"
// @Success  204
// @Failure  400  {object}  pkg.HTTPError
// @Security BearerAuth
// @Router   /admin/clients/{id} [delete]
func (h *ClientHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), middleware.Actor(c), entities.ClientID(c.Param("id"))); err != nil {
		renderError(c, mapClientError(err))
		return
	}
	c.Status(http.StatusNoContent)
}
