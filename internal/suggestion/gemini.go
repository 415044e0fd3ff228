package suggestion

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	genai "github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"github.com/helloChirag28/BookEase/internal/booking"
	"github.com/helloChirag28/BookEase/internal/pkg/logger"
)

// Gemini is a Suggester backed by a generative model. It is strictly
// best-effort: any upstream failure, malformed reply, or reply naming a
// time outside the available set degrades to the local heuristic. The
// booking flow never blocks on the model.
type Gemini struct {
	model    *genai.GenerativeModel
	fallback Heuristic
}

func NewGemini(ctx context.Context, apiKey string) (*Gemini, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &Gemini{
		model:    client.GenerativeModel("models/gemini-1.5-pro"),
		fallback: NewHeuristic(),
	}, nil
}

type modelReply struct {
	Time   string `json:"time"`
	Reason string `json:"reason"`
}

func (g *Gemini) Suggest(ctx context.Context, pref Preference, available []booking.Minute) (Suggestion, error) {
	if len(available) == 0 {
		return Suggestion{}, ErrNoAvailableSlots
	}

	reply, err := g.ask(ctx, pref, available)
	if err != nil {
		logger.L().Warn("gemini suggestion failed, using heuristic",
			zap.String("preference", string(pref)),
			zap.Error(err),
		)
		return g.fallback.Suggest(ctx, pref, available)
	}

	t, err := booking.ParseClock(reply.Time)
	if err != nil || !contains(available, t) {
		logger.L().Warn("gemini suggested a time outside the available set, using heuristic",
			zap.String("suggested", reply.Time),
		)
		return g.fallback.Suggest(ctx, pref, available)
	}

	reason := strings.TrimSpace(reply.Reason)
	if reason == "" {
		reason = "A great fit for your schedule!"
	}

	return Suggestion{Time: t, Reason: reason}, nil
}

func (g *Gemini) ask(ctx context.Context, pref Preference, available []booking.Minute) (*modelReply, error) {
	times := make([]string, len(available))
	for i, t := range available {
		times[i] = t.Clock()
	}

	prompt := fmt.Sprintf(`You are an assistant for an appointment booking system.
Customer preference: %s
Available time slots: %s

Recommend ONE time slot from the available options, with a brief friendly
reason (max 50 characters). Respond with JSON only:
{"time": "HH:MM", "reason": "..."}`, pref, strings.Join(times, ", "))

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("gemini generate error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}

	raw := strings.TrimSpace(sb.String())
	// Models like to wrap JSON in markdown fences.
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")

	var reply modelReply
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &reply); err != nil {
		return nil, fmt.Errorf("gemini reply is not valid JSON: %w", err)
	}
	return &reply, nil
}

func contains(available []booking.Minute, t booking.Minute) bool {
	for _, a := range available {
		if a == t {
			return true
		}
	}
	return false
}
