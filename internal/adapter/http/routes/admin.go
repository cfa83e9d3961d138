package routes

import (
	"atelie/internal/adapter/http/middleware"
	"atelie/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

// Area do cliente
func addClientRoutes(rg *gin.RouterGroup, h routeHandlers) {
	me := rg.Group(PathMe, middleware.RequireRole(entities.RoleCliente))
	{
		me.GET("/orders", h.orders.ListOwn)
	}
}

// Area administrativa: admin e editor
func addAdminRoutes(rg *gin.RouterGroup, h routeHandlers) {
	admin := rg.Group(PathAdmin, middleware.RequireStaff())

	admin.GET("/dashboard", h.dashboard.Summary)

	orders := admin.Group("/orders")
	{
		orders.GET("", h.orders.List)
		orders.GET("/:id", h.orders.Get)
		orders.PATCH("/:id/status", h.orders.UpdateStatus)
		orders.DELETE("/:id", h.orders.Delete)
	}

	clients := admin.Group("/clients")
	{
		clients.GET("", h.clients.List)
		clients.GET("/:id", h.clients.Get)
		clients.DELETE("/:id", h.clients.Delete)
	}

	products := admin.Group("/products")
	{
		products.GET("", h.catalog.AdminListProducts)
		products.POST("", h.catalog.CreateProduct)
		products.PUT("/:id", h.catalog.UpdateProduct)
		products.DELETE("/:id", h.catalog.DeleteProduct)
	}

	services := admin.Group("/services")
	{
		services.POST("", h.catalog.CreateService)
		services.PUT("/:id", h.catalog.UpdateService)
		services.DELETE("/:id", h.catalog.DeleteService)
	}

	admin.POST("/images", h.images.Upload)
}
