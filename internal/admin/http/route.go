package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/admin")

	// === Public Routes ===
	group.POST("/login", h.Login)

	// === Admin Routes ===
	admin := group.Group("")
	admin.Use(authMiddleware)
	{
		admin.GET("/stats", h.Stats)
	}
}
