package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, authOptional gin.HandlerFunc) {
	group := g.Group("/services")

	// === Public Routes ===
	// Listing is public, but include_inactive only takes effect when the
	// caller turns out to be an authenticated admin.
	group.GET("", authOptional, h.List)
	group.GET("/:id", h.Get)
	group.GET("/:id/image", h.GetImage)

	// === Admin Routes ===
	admin := group.Group("")
	admin.Use(authMiddleware)
	{
		admin.POST("", h.Create)
		admin.PATCH("/:id", h.Update)
		admin.DELETE("/:id", h.Deactivate)
		admin.POST("/:id/image", h.UploadImage)
	}
}
