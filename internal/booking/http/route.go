package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	// Availability grid lives under the service resource.
	g.GET("/services/:id/slots", h.ListSlots)

	group := g.Group("/bookings")

	// === Public Routes ===
	group.POST("", h.Create)
	group.GET("/:id", h.Get)

	// === Admin Routes ===
	admin := group.Group("")
	admin.Use(authMiddleware)
	{
		admin.GET("", h.List)
		admin.POST("/:id/status", h.UpdateStatus)
	}
}
