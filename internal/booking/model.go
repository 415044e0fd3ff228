package booking

import (
	"net/http"
	"time"

	"github.com/helloChirag28/BookEase/internal/pkg/apperror"
)

var (
	ErrNotFound          = apperror.New(http.StatusNotFound, "booking not found")
	ErrUnknownService    = apperror.New(http.StatusNotFound, "service not found")
	ErrInvalidDate       = apperror.New(http.StatusBadRequest, "date must be a valid calendar date not in the past")
	ErrInvalidTime       = apperror.New(http.StatusBadRequest, "time is not a bookable slot start")
	ErrSlotTaken         = apperror.New(http.StatusConflict, "time slot already booked")
	ErrInvalidTransition = apperror.New(http.StatusConflict, "invalid booking status transition")
	ErrInvalidStatus     = apperror.New(http.StatusBadRequest, "invalid booking status")
	ErrInvalidCustomer   = apperror.New(http.StatusBadRequest, "customer name and email are required")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Valid reports whether s is a known status value.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Active reports whether a booking in this status occupies its slot.
// Only cancelled bookings free the slot.
func (s Status) Active() bool {
	return s.Valid() && s != StatusCancelled
}

// CanTransitionTo enforces the booking state machine:
// pending -> confirmed | cancelled, confirmed -> completed | cancelled.
// completed and cancelled are terminal.
func (s Status) CanTransitionTo(target Status) bool {
	switch s {
	case StatusPending:
		return target == StatusConfirmed || target == StatusCancelled
	case StatusConfirmed:
		return target == StatusCompleted || target == StatusCancelled
	default:
		return false
	}
}

// Booking represents a customer's claim on a single slot of a service day.
type Booking struct {
	ID              string
	ServiceID       string
	ServiceName     string
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	Date            time.Time // civil date, midnight UTC
	Start           Minute
	DurationMinutes int
	Status          Status
	Amount          int64 // cents, snapshot of the service price at claim time
	PaymentIntentID *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// End returns the first minute after the booked interval.
func (b *Booking) End() Minute {
	return b.Start + Minute(b.DurationMinutes)
}

// Filter defines parameters for listing bookings.
type Filter struct {
	ServiceID string
	Status    string
	Date      *time.Time
	Email     string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}
