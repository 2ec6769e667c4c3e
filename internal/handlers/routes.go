package handlers

import (
	"restaurant_ordering/internal/auth"
	"restaurant_ordering/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func RegisterRoutes(router *gin.Engine, h *APIHandler, jwtManager *auth.JWTManager) {
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/categories", h.Categories)
		api.GET("/menu-summary", h.MenuSummary)
		api.GET("/menu/:category", h.ListMenu)
		api.GET("/menu/:category/:id", h.GetMenuItem)

		api.POST("/orders", h.PlaceOrder)
		api.POST("/orders/quote", h.QuoteOrder)

		api.POST("/admin/login", h.Login)
	}

	admin := api.Group("", middleware.RequireAdmin(jwtManager))
	{
		admin.POST("/menu/add", h.AddMenuItem)
		admin.PUT("/menu/update", h.UpdateMenuItem)
		admin.DELETE("/menu/delete", h.DeleteMenuItem)

		admin.GET("/orders", h.ListOrders)
		admin.GET("/statistics", h.Statistics)
	}
}
