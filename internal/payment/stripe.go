package payment

import (
	"context"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"go.uber.org/zap"

	"github.com/helloChirag28/BookEase/internal/pkg/apperror"
	"github.com/helloChirag28/BookEase/internal/pkg/logger"
)

// StripeProvider implements Provider on top of Stripe payment intents.
type StripeProvider struct {
	api *client.API
}

func NewStripeProvider(secretKey string) *StripeProvider {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeProvider{api: api}
}

func (p *StripeProvider) CreateIntent(ctx context.Context, amount int64, currency string, bookingID string) (*Intent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	params.AddMetadata("booking_id", bookingID)

	pi, err := p.api.PaymentIntents.New(params)
	if err != nil {
		logger.L().Error("stripe create payment intent failed",
			zap.String("booking_id", bookingID),
			zap.Error(err),
		)
		return nil, apperror.Wrap(err, ErrUpstreamUnavailable.Code, ErrUpstreamUnavailable.Message)
	}

	return &Intent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Amount:       pi.Amount,
		Succeeded:    pi.Status == stripe.PaymentIntentStatusSucceeded,
	}, nil
}

func (p *StripeProvider) GetIntent(ctx context.Context, id string) (*Intent, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	pi, err := p.api.PaymentIntents.Get(id, params)
	if err != nil {
		logger.L().Error("stripe get payment intent failed",
			zap.String("intent_id", id),
			zap.Error(err),
		)
		return nil, apperror.Wrap(err, ErrUpstreamUnavailable.Code, ErrUpstreamUnavailable.Message)
	}

	return &Intent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Amount:       pi.Amount,
		Succeeded:    pi.Status == stripe.PaymentIntentStatusSucceeded,
	}, nil
}
