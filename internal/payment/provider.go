package payment

import (
	"context"
	"net/http"

	"github.com/helloChirag28/BookEase/internal/pkg/apperror"
)

var (
	ErrUpstreamUnavailable = apperror.New(http.StatusBadGateway, "payment provider unavailable")
	ErrNotConfirmed        = apperror.New(http.StatusPaymentRequired, "payment has not been confirmed")
	ErrNotPayable          = apperror.New(http.StatusConflict, "booking is not awaiting payment")
	ErrNoIntent            = apperror.New(http.StatusConflict, "no payment intent exists for this booking")
)

// Intent is the provider-agnostic view of a payment intent. The core only
// cares about identity, the client-side secret, and whether the charge
// went through.
type Intent struct {
	ID           string
	ClientSecret string
	Amount       int64
	Succeeded    bool
}

// Provider creates and inspects payment intents. Card handling stays
// entirely on the provider's side.
type Provider interface {
	CreateIntent(ctx context.Context, amount int64, currency string, bookingID string) (*Intent, error)
	GetIntent(ctx context.Context, id string) (*Intent, error)
}
