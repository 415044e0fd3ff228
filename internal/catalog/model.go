package catalog

import (
	"net/http"
	"time"

	"github.com/helloChirag28/BookEase/internal/pkg/apperror"
)

var (
	ErrNotFound        = apperror.New(http.StatusNotFound, "service not found")
	ErrEmptyName       = apperror.New(http.StatusBadRequest, "service name cannot be empty")
	ErrInvalidDuration = apperror.New(http.StatusBadRequest, "duration must be a positive number of minutes")
	ErrInvalidPrice    = apperror.New(http.StatusBadRequest, "price cannot be negative")
	ErrInvalidImage    = apperror.New(http.StatusBadRequest, "uploaded file is not a valid image")
)

// ServiceOffering represents a bookable service (e.g., Signature Facial).
// A service is never hard-deleted once bookings reference it; deactivating
// hides it from new bookings instead.
type ServiceOffering struct {
	ID              string
	Name            string
	Description     string
	DurationMinutes int
	Price           int64 // cents
	Category        string
	Active          bool
	ImagePath       *string
	CreatedAt       time.Time
}

// Filter defines parameters for listing services.
type Filter struct {
	Category        string
	IncludeInactive bool
	Page            int
	PageSize        int
}
