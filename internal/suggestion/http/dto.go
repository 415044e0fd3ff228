package http

import "github.com/helloChirag28/BookEase/internal/suggestion"

type SuggestRequest struct {
	ServiceID  string `json:"service_id" binding:"required,uuid"`
	Date       string `json:"date" binding:"required"`
	Preference string `json:"preference" binding:"required"`
}

type SuggestionResponse struct {
	Time   string `json:"time"`
	Reason string `json:"reason"`
}

func NewSuggestionResponse(s suggestion.Suggestion) SuggestionResponse {
	return SuggestionResponse{
		Time:   s.Time.Clock(),
		Reason: s.Reason,
	}
}
