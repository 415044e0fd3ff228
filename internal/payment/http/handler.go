package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	bookingHttp "github.com/helloChirag28/BookEase/internal/booking/http"
	"github.com/helloChirag28/BookEase/internal/payment"
	"github.com/helloChirag28/BookEase/internal/pkg/response"
)

type Handler struct {
	checkout payment.Checkout
}

func NewHandler(checkout payment.Checkout) *Handler {
	return &Handler{checkout: checkout}
}

// CreateIntent starts checkout for a pending booking.
func (h *Handler) CreateIntent(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	intent, err := h.checkout.Start(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewIntentResponse(intent))
}

// ConfirmPayment verifies the charge with the provider and confirms the
// booking. A failed payment returns 402 and leaves the booking pending
// with its slot still held.
func (h *Handler) ConfirmPayment(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	b, err := h.checkout.Confirm(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, bookingHttp.NewBookingResponse(b))
}
