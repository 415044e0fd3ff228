package http

import "github.com/helloChirag28/BookEase/internal/payment"

// IntentResponse exposes what the browser needs to collect the card:
// the client secret. Everything else stays server-side.
type IntentResponse struct {
	IntentID     string `json:"intent_id"`
	ClientSecret string `json:"client_secret"`
	Amount       int64  `json:"amount"`
}

func NewIntentResponse(i *payment.Intent) IntentResponse {
	return IntentResponse{
		IntentID:     i.ID,
		ClientSecret: i.ClientSecret,
		Amount:       i.Amount,
	}
}
