package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/helloChirag28/BookEase/internal/booking"
	"github.com/helloChirag28/BookEase/internal/pkg/response"
	"github.com/helloChirag28/BookEase/internal/suggestion"
)

type Handler struct {
	bookings  booking.Service
	suggester suggestion.Suggester
}

func NewHandler(bookings booking.Service, suggester suggestion.Suggester) *Handler {
	return &Handler{
		bookings:  bookings,
		suggester: suggester,
	}
}

// Suggest recommends one bookable slot matching the customer preference.
// The recommendation is always drawn from the current available set, so
// it can be claimed directly (though it may still lose a race).
func (h *Handler) Suggest(c *gin.Context) {
	var body SuggestRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	pref, err := suggestion.ParsePreference(body.Preference)
	if err != nil {
		response.Error(c, err)
		return
	}

	date, err := time.Parse("2006-01-02", body.Date)
	if err != nil {
		response.Error(c, booking.ErrInvalidDate)
		return
	}

	slots, err := h.bookings.ListSlots(c.Request.Context(), body.ServiceID, date)
	if err != nil {
		response.Error(c, err)
		return
	}

	available := make([]booking.Minute, 0, len(slots))
	for _, s := range slots {
		if s.Available {
			available = append(available, s.Start)
		}
	}

	sug, err := h.suggester.Suggest(c.Request.Context(), pref, available)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewSuggestionResponse(sug))
}
