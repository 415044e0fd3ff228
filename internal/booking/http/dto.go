package http

import (
	"time"

	"github.com/helloChirag28/BookEase/internal/booking"
	catalogHttp "github.com/helloChirag28/BookEase/internal/catalog/http"
	"github.com/helloChirag28/BookEase/internal/pkg/request"
)

const dateLayout = "2006-01-02"

// SlotResponse is one entry of the availability grid.
type SlotResponse struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
	BookingID string `json:"booking_id,omitempty"`
}

func NewSlotResponse(s booking.TimeSlot) SlotResponse {
	return SlotResponse{
		Time:      s.Start.Clock(),
		Available: s.Available,
		BookingID: s.BookingID,
	}
}

type BookingResponse struct {
	ID              string                 `json:"id"`
	Service         catalogHttp.ServiceTag `json:"service"`
	CustomerName    string                 `json:"customer_name"`
	CustomerEmail   string                 `json:"customer_email"`
	CustomerPhone   string                 `json:"customer_phone,omitempty"`
	Date            string                 `json:"date"`
	Time            string                 `json:"time"`
	DurationMinutes int                    `json:"duration_minutes"`
	Status          string                 `json:"status"`
	Amount          int64                  `json:"amount"`
	PaymentIntentID *string                `json:"payment_intent_id,omitempty"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:              b.ID,
		Service:         catalogHttp.ServiceTag{ID: b.ServiceID, Name: b.ServiceName},
		CustomerName:    b.CustomerName,
		CustomerEmail:   b.CustomerEmail,
		CustomerPhone:   b.CustomerPhone,
		Date:            b.Date.Format(dateLayout),
		Time:            b.Start.Clock(),
		DurationMinutes: b.DurationMinutes,
		Status:          string(b.Status),
		Amount:          b.Amount,
		PaymentIntentID: b.PaymentIntentID,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

type CreateBookingRequest struct {
	ServiceID     string `json:"service_id" binding:"required,uuid"`
	Date          string `json:"date" binding:"required"`
	Time          string `json:"time" binding:"required"`
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerEmail string `json:"customer_email" binding:"required,email"`
	CustomerPhone string `json:"customer_phone"`
}

type ListBookingsRequest struct {
	request.ListParams
	ServiceID string `form:"service_id" binding:"omitempty,uuid"`
	Status    string `form:"status" binding:"omitempty,oneof=pending confirmed completed cancelled"`
	Date      string `form:"date"`
	Email     string `form:"email" binding:"omitempty,email"`
	SortBy    string `form:"sort_by" binding:"omitempty,oneof=booking_date start_minute created_at status"`
	SortOrder string `form:"sort_order" binding:"omitempty,oneof=ASC DESC asc desc"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed completed cancelled"`
}
