package payment

import (
	"context"

	"github.com/helloChirag28/BookEase/internal/booking"
)

// Checkout drives a booking through payment: create an intent for the
// held slot, then confirm the booking once the provider reports success.
type Checkout interface {
	// Start creates a payment intent for a pending booking and records
	// the intent reference on the booking row.
	Start(ctx context.Context, bookingID string) (*Intent, error)

	// Confirm checks the intent with the provider and, only on a
	// successful charge, transitions the booking pending -> confirmed.
	// A failed or incomplete payment leaves the booking pending and its
	// slot held.
	Confirm(ctx context.Context, bookingID string) (*booking.Booking, error)
}

type checkout struct {
	bookings booking.Service
	provider Provider
	currency string
}

func NewCheckout(bookings booking.Service, provider Provider) Checkout {
	return &checkout{
		bookings: bookings,
		provider: provider,
		currency: "usd",
	}
}

func (c *checkout) Start(ctx context.Context, bookingID string) (*Intent, error) {
	b, err := c.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.Status != booking.StatusPending {
		return nil, ErrNotPayable
	}

	intent, err := c.provider.CreateIntent(ctx, b.Amount, c.currency, b.ID)
	if err != nil {
		return nil, err
	}

	if err := c.bookings.SetPaymentIntent(ctx, b.ID, intent.ID); err != nil {
		return nil, err
	}

	return intent, nil
}

func (c *checkout) Confirm(ctx context.Context, bookingID string) (*booking.Booking, error) {
	b, err := c.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	// Idempotent: confirming an already-confirmed booking is a no-op.
	if b.Status == booking.StatusConfirmed {
		return b, nil
	}
	if b.Status != booking.StatusPending {
		return nil, ErrNotPayable
	}
	if b.PaymentIntentID == nil {
		return nil, ErrNoIntent
	}

	intent, err := c.provider.GetIntent(ctx, *b.PaymentIntentID)
	if err != nil {
		return nil, err
	}
	if !intent.Succeeded {
		return nil, ErrNotConfirmed
	}

	return c.bookings.Transition(ctx, b.ID, booking.StatusConfirmed)
}
