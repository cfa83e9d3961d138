package routes

import (
	"atelie/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPing     = "/ping"
	PathAuth     = "/auth"
	PathQuotes   = "/quotes"
	PathProducts = "/products"
	PathServices = "/services"
	PathMe       = "/me"
	PathAdmin    = "/admin"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, handlers.Ping)
}

// Rotas publicas
func addPublicRoutes(rg *gin.RouterGroup, h routeHandlers) {
	addPingRoutes(rg)

	authGroup := rg.Group(PathAuth)
	{
		authGroup.POST("/login", h.auth.Login)
		authGroup.POST("/signup", h.auth.Signup)
	}

	rg.POST(PathQuotes, h.quotes.Submit)

	products := rg.Group(PathProducts)
	{
		products.GET("", h.catalog.ListProducts)
		products.GET("/featured", h.catalog.FeaturedProducts)
		products.GET("/categories", h.catalog.ProductCategories)
		products.GET("/:id", h.catalog.GetProduct)
	}

	services := rg.Group(PathServices)
	{
		services.GET("", h.catalog.ListServices)
		services.GET("/:id", h.catalog.GetService)
	}
}
