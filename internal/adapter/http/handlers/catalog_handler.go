package handlers

import (
	"net/http"

	request "atelie/internal/adapter/http/dto/request"
	response "atelie/internal/adapter/http/dto/response"
	"atelie/internal/adapter/http/middleware"
	"atelie/internal/usecase"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves products and services, publicly and for the admin area.
type CatalogHandler struct {
	products usecase.IProductUseCase
	services usecase.IServiceUseCase
}

func NewCatalogHandler(products usecase.IProductUseCase, services usecase.IServiceUseCase) *CatalogHandler {
	return &CatalogHandler{products: products, services: services}
}

// ListProducts godoc
// @Summary  List available products
// @Tags     products
// @Produce  json
// @Param    q         query  string  false  "Search in name and description"
// @Param    category  query  string  false  "Category"
// @Param    sort      query  string  false  "nome-asc | nome-desc | preco-asc | preco-desc"
// @Success  200  {array}   response.ProductResponse
// @Failure  400  {object}  pkg.HTTPError
// @Router   /products [get]
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	var q request.ProductListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		renderError(c, errInvalidPayload)
		return
	}
	products, err := h.products.ListPublic(c.Request.Context(), q.ToQuery())
	if err != nil {
		renderError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProducts(products))
}

// FeaturedProducts godoc
// @Summary  Products highlighted on the home page
// @Tags     products
// @Produce  json
// @Success  200  {array}  response.ProductResponse
// @Router   /products/featured [get]
func (h *CatalogHandler) FeaturedProducts(c *gin.Context) {
	products, err := h.products.Featured(c.Request.Context())
	if err != nil {
		renderError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProducts(products))
}

// ProductCategories godoc
// @Summary  Distinct product categories
// @Tags     products
// @Produce  json
// @Success  200  {array}  string
// @Router   /products/categories [get]
func (h *CatalogHandler) ProductCategories(c *gin.Context) {
	categories, err := h.products.Categories(c.Request.Context())
	if err != nil {
		renderError(c, mapCatalogError(err))
		return
	}
	if categories == nil {
		categories = []string{}
	}
	c.JSON(http.StatusOK, categories)
}

// GetProduct godoc
// @Summary  Get a product
// @Tags     products
// @Produce  json
// @Param    id   path      string  true  "Product ID"
// @Success  200  {object}  response.ProductResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /products/{id} [get]
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	p, err := h.products.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		renderError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProduct(p))
}

// AdminListProducts godoc
// @Summary  List every product, available or not
// @Tags     admin-products
// @Produce  json
// @Success  200  {array}  response.ProductResponse
// @Security BearerAuth
// @Router   /admin/products [get]
func (h *CatalogHandler) AdminListProducts(c *gin.Context) {
	products, err := h.products.ListAll(c.Request.Context(), middleware.Actor(c))
	if err != nil {
		renderError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProducts(products))
}

// CreateProduct godoc
// @Summary  Create a product
// @Tags     admin-products
// @Accept   json
// @Produce  json
// @Param    payload  body      request.ProductRequest  true  "Product"
// @Success  201      {object}  response.ProductResponse
// @Failure  400      {object}  pkg.HTTPError
// @Security BearerAuth
// @Router   /admin/products [post]
func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var payload request.ProductRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		renderError(c, errInvalidPayload)
		return
	}
	p, err := h.products.Create(c.Request.Context(), middleware.Actor(c), payload.ToInput())
	if err != nil {
		renderError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromProduct(p))
}

// UpdateProduct godoc
// @Summary  Update a product
// @Tags     admin-products
// @Accept   json
// @Produce  json
// @Param    id       path      string                  true  "Product ID"
// @Param    payload  body      request.ProductRequest  true  "Product"
// @Success  200      {object}  response.ProductResponse
// @Failure  404      {object}  pkg.HTTPError
// @Security BearerAuth
// @Router   /admin/products/{id} [put]
func (h *CatalogHandler) UpdateProduct(c *gin.Context) {
	var payload request.ProductRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		renderError(c, errInvalidPayload)
		return
	}
	p, err := h.products.Update(c.Request.Context(), middleware.Actor(c), c.Param("id"), payload.ToInput())
	if err != nil {
		renderError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProduct(p))
}

// DeleteProduct godoc
// @Summary  Delete a product and its image
// @Tags     admin-products
// @Param    id  path  string  true  "Product ID"
// @Success  204
// @Failure  404  {object}  pkg.HTTPError
// @Security BearerAuth
// @Router   /admin/products/{id} [delete]
func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	if err := h.products.Delete(c.Request.Context(), middleware.Actor(c), c.Param("id")); err != nil {
		renderError(c, mapCatalogError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// ListServices godoc
// @Summary  List services
// @Tags     services
// @Produce  json
// @Success  200  {array}  response.ServiceResponse
// @Router   /services [get]
func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := h.services.List(c.Request.Context())
	if err != nil {
		renderError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromServices(services))
}

// GetService godoc
// @Summary  Get a service
// @Tags     services
// @Produce  json
// @Param    id   path      string  true  "Service ID"
// @Success  200  {object}  response.ServiceResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /services/{id} [get]
func (h *CatalogHandler) GetService(c *gin.Context) {
	s, err := h.services.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		renderError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromService(s))
}

// CreateService godoc
// @Summary  Create a service
// @Tags     admin-services
// @Accept   json
// @Produce  json
// @Param    payload  body      request.ServiceRequest  true  "Service"
// @Success  201      {object}  response.ServiceResponse
// @Failure  400      {object}  pkg.HTTPError
// @Security BearerAuth
// @Router   /admin/services [post]
func (h *CatalogHandler) CreateService(c *gin.Context) {
	var payload request.ServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		renderError(c, errInvalidPayload)
		return
	}
	s, err := h.services.Create(c.Request.Context(), middleware.Actor(c), payload.ToInput())
	if err != nil {
		renderError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromService(s))
}

// UpdateService godoc
// @Summary  Update a service
// @Tags     admin-services
// @Accept   json
// @Produce  json
// @Param    id       path      string                  true  "Service ID"
// @Param    payload  body      request.ServiceRequest  true  "Service"
// @Success  200      {object}  response.ServiceResponse
// @Failure  404      {object}  pkg.HTTPError
// @Security BearerAuth
// @Router   /admin/services/{id} [put]
func (h *CatalogHandler) UpdateService(c *gin.Context) {
	var payload request.ServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		renderError(c, errInvalidPayload)
		return
	}
	s, err := h.services.Update(c.Request.Context(), middleware.Actor(c), c.Param("id"), payload.ToInput())
	if err != nil {
		renderError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromService(s))
}

// DeleteService godoc
// @Summary  Delete a service and its image
// @Tags     admin-services
// @Param    id  path  string  true  "Service ID"
// @Success  204
// @Failure  404  {object}  pkg.HTTPError
// @Security BearerAuth
// @Router   /admin/services/{id} [delete]
func (h *CatalogHandler) DeleteService(c *gin.Context) {
	if err := h.services.Delete(c.Request.Context(), middleware.Actor(c), c.Param("id")); err != nil {
		renderError(c, mapCatalogError(err))
		return
	}
	c.Status(http.StatusNoContent)
}
