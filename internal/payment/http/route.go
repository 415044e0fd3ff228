package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	// Checkout is driven by the customer who holds the pending booking id.
	g.POST("/bookings/:id/payment-intent", h.CreateIntent)
	g.POST("/bookings/:id/confirm-payment", h.ConfirmPayment)
}
