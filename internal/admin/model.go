package admin

import (
	"net/http"
	"time"

	"github.com/helloChirag28/BookEase/internal/pkg/apperror"
)

var (
	ErrNotFound           = apperror.New(http.StatusNotFound, "admin account not found")
	ErrInvalidCredentials = apperror.New(http.StatusUnauthorized, "invalid email or password")
)

// Account is a business-owner login. Accounts are provisioned directly in
// the database; there is no self-service signup.
type Account struct {
	ID           string
	Email        string
	PasswordHash string
	DisplayName  *string
	CreatedAt    time.Time
	LastLoginAt  *time.Time
}

// Stats are the dashboard aggregates: today's activity plus the size of
// the customer base, computed over non-cancelled bookings.
type Stats struct {
	TodayBookings  int
	TodayRevenue   int64
	TotalCustomers int
}
