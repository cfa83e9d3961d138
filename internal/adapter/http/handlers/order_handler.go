package handlers

import (
	"errors"
	"net/http"
	"time"

	request "atelie/internal/adapter/http/dto/request"
	response "atelie/internal/adapter/http/dto/response"
	"atelie/internal/adapter/http/middleware"
	"atelie/internal/domain/entities"
	"atelie/internal/usecase"
	"atelie/pkg"

	"github.com/gin-gonic/gin"
)

// OrderHandler serves the admin order pages and the client self-service list.
type OrderHandler struct {
	orders   usecase.IOrderUseCase
	enricher usecase.IOrderEnrichmentUseCase
	loc      *time.Location
}

func NewOrderHandler(orders usecase.IOrderUseCase, enricher usecase.IOrderEnrichmentUseCase, loc *time.Location) *OrderHandler {
	return &OrderHandler{orders: orders, enricher: enricher, loc: loc}
}

// List godoc
// @Summary  List orders
// @Tags     admin-orders
// @Produce  json
// @Param    status  query  string  false  "Recebido | Em análise | Concluído | Rejeitado"
// @Param    type    query  string  false  "produto | servico"
// @Param    date    query  string  false  "YYYY-MM-DD"
// @Success  200  {array}   response.EnrichedOrderResponse
// @Failure  400  {object}  pkg.HTTPError
// @Security BearerAuth
// @Router   /admin/orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	var q request.OrderListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		renderError(c, errInvalidPayload)
		return
	}
	filter, err := q.ToFilter()
	if err != nil {
		if errors.Is(err, request.ErrInvalidDate) {
			renderError(c, pkg.NewDomainErrorSimple("INVALID_DATE", "Data inválida, use AAAA-MM-DD", http.StatusBadRequest))
			return
		}
		renderError(c, mapOrderError(err))
		return
	}

	orders, err := h.orders.List(c.Request.Context(), filter)
	if err != nil {
		renderError(c, mapOrderError(err))
		return
	}

	enriched := h.enricher.EnrichAll(c.Request.Context(), orders)
	c.JSON(http.StatusOK, response.FromEnrichedOrders(enriched, h.loc))
}

// Get godoc
// @Summary  Get an order with its client and catalog item
// @Tags     admin-orders
// @Produce  json
// @Param    id   path      string  true  "Order ID"
// @Success  200  {object}  response.EnrichedOrderResponse
// @Failure  404  {object}  pkg.HTTPError
// @Security BearerAuth
// @Router   /admin/orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	o, err := h.orders.Get(c.Request.Context(), entities.OrderID(c.Param("id")))
	if err != nil {
		renderError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEnrichedOrder(h.enricher.Enrich(c.Request.Context(), o), h.loc))
}

// UpdateStatus godoc
// @Summary  Change the status of an order
// @Tags     admin-orders
// @Accept   json
// @Produce  json
// @Param    id       path      string                            true  "Order ID"
// @Param    payload  body      request.UpdateOrderStatusRequest  true  "New status"
// @Success  200      {object}  response.OrderResponse
// @Failure  400      {object}  pkg.HTTPError
// @Failure  403      {object}  pkg.HTTPError
// @Failure  404      {object}  pkg.HTTPError
// @Security BearerAuth
// @Router   /admin/orders/{id}/status [patch]
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var payload request.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		renderError(c, errInvalidPayload)
		return
	}
	status, err := payload.ResolveStatus()
	if err != nil {
		renderError(c, mapOrderError(err))
		return
	}

	o, err := h.orders.UpdateStatus(c.Request.Context(), middleware.Actor(c), entities.OrderID(c.Param("id")), status)
	if err != nil {
		renderError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(o, h.loc))
}

// Delete godoc
// @Summary  Delete an order and its photo
// @Tags     admin-orders
// @Param    id  path  string  true  "Order ID"
// @Success  204
// @Failure  403  {object}  pkg.HTTPError
// @Security BearerAuth
// @Router   /admin/orders/{id} [delete]
func (h *OrderHandler) Delete(c *gin.Context) {
	if err := h.orders.Delete(c.Request.Context(), middleware.Actor(c), entities.OrderID(c.Param("id"))); err != nil {
		renderError(c, mapOrderError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// ListOwn godoc
// @Summary  List the orders of the logged-in client
// @Tags     me
// @Produce  json
// @Success  200  {array}   response.EnrichedOrderResponse
// @Failure  401  {object}  pkg.HTTPError
// @Security BearerAuth
// @Router   /me/orders [get]
func (h *OrderHandler) ListOwn(c *gin.Context) {
	orders, err := h.orders.ListOwn(c.Request.Context(), middleware.Actor(c))
	if err != nil {
		renderError(c, mapOrderError(err))
		return
	}
	enriched := h.enricher.EnrichAll(c.Request.Context(), orders)
	c.JSON(http.StatusOK, response.FromEnrichedOrders(enriched, h.loc))
}
