package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/helloChirag28/BookEase/internal/booking"
	"github.com/helloChirag28/BookEase/internal/pkg/response"
)

type Handler struct {
	service booking.Service
}

func NewHandler(service booking.Service) *Handler {
	return &Handler{service: service}
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

// ListSlots serves the availability grid for a service day.
func (h *Handler) ListSlots(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	date, err := parseDate(c.Query("date"))
	if err != nil {
		response.Error(c, booking.ErrInvalidDate)
		return
	}

	slots, err := h.service.ListSlots(c.Request.Context(), id, date)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]SlotResponse, len(slots))
	for i, s := range slots {
		items[i] = NewSlotResponse(s)
	}

	c.JSON(http.StatusOK, gin.H{"date": c.Query("date"), "slots": items})
}

// Create claims a slot: on success the booking is created in pending
// status. A 409 means the slot was lost to a concurrent claim and the
// caller should re-query availability.
func (h *Handler) Create(c *gin.Context) {
	var body CreateBookingRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	date, err := parseDate(body.Date)
	if err != nil {
		response.Error(c, booking.ErrInvalidDate)
		return
	}
	start, err := booking.ParseClock(body.Time)
	if err != nil {
		response.Error(c, booking.ErrInvalidTime)
		return
	}

	b, err := h.service.Claim(c.Request.Context(), booking.ClaimRequest{
		ServiceID:     body.ServiceID,
		Date:          date,
		Start:         start,
		CustomerName:  body.CustomerName,
		CustomerEmail: body.CustomerEmail,
		CustomerPhone: body.CustomerPhone,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewBookingResponse(b))
}

func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func (h *Handler) List(c *gin.Context) {
	var req ListBookingsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return
	}
	req.Normalize()

	filter := booking.Filter{
		ServiceID: req.ServiceID,
		Status:    req.Status,
		Email:     req.Email,
		Page:      req.Page,
		PageSize:  req.PageSize,
		SortBy:    req.SortBy,
		SortOrder: req.SortOrder,
	}
	if req.Date != "" {
		date, err := parseDate(req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
			return
		}
		filter.Date = &date
	}

	bookings, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = NewBookingResponse(b)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, req.Page, req.PageSize, total))
}

// UpdateStatus applies a state-machine transition (confirm, complete,
// cancel). Cancelling frees the slot for future claims.
func (h *Handler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var body UpdateStatusRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	b, err := h.service.Transition(c.Request.Context(), id, booking.Status(body.Status))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}
