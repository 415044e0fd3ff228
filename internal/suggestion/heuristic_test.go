package suggestion

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helloChirag28/BookEase/internal/booking"
)

func minutes(clocks ...string) []booking.Minute {
	out := make([]booking.Minute, 0, len(clocks))
	for _, c := range clocks {
		m, err := booking.ParseClock(c)
		if err != nil {
			panic(err)
		}
		out = append(out, m)
	}
	return out
}

func TestHeuristicPicksEarliestMatch(t *testing.T) {
	h := NewHeuristic()

	tests := []struct {
		name      string
		pref      Preference
		available []booking.Minute
		want      string
	}{
		{"morning earliest", PrefMorning, minutes("09:00", "09:30", "14:00"), "09:00"},
		{"morning skips afternoon", PrefMorning, minutes("14:00", "09:30"), "09:30"},
		{"afternoon", PrefAfternoon, minutes("09:00", "12:00", "13:30"), "12:00"},
		{"evening", PrefEvening, minutes("09:00", "17:00", "17:30"), "17:00"},
		{"popular peak band", PrefPopular, minutes("09:00", "09:30", "10:30", "15:30"), "10:30"},
		{"quiet off-peak", PrefQuiet, minutes("10:00", "11:00", "13:00"), "13:00"},
		{"earliest overall", PrefEarliest, minutes("09:30", "11:00", "17:00"), "09:30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := h.Suggest(context.Background(), tt.pref, tt.available)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Time.Clock())
			assert.NotEmpty(t, got.Reason)
		})
	}
}

func TestHeuristicIsDeterministic(t *testing.T) {
	h := NewHeuristic()
	available := minutes("09:00", "09:30", "14:00")

	first, err := h.Suggest(context.Background(), PrefMorning, available)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := h.Suggest(context.Background(), PrefMorning, available)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestHeuristicFallsBackToFullSet(t *testing.T) {
	h := NewHeuristic()

	// Nothing before noon: fall back to the earliest of everything.
	got, err := h.Suggest(context.Background(), PrefMorning, minutes("13:00", "15:30"))
	require.NoError(t, err)
	assert.Equal(t, "13:00", got.Time.Clock())
	assert.Equal(t, "The closest match to your preference!", got.Reason)
}

func TestHeuristicNoSlots(t *testing.T) {
	h := NewHeuristic()

	_, err := h.Suggest(context.Background(), PrefMorning, nil)
	assert.ErrorIs(t, err, ErrNoAvailableSlots)
}

func TestHeuristicUnknownPreference(t *testing.T) {
	h := NewHeuristic()

	_, err := h.Suggest(context.Background(), Preference("midnight"), minutes("09:00"))
	assert.ErrorIs(t, err, ErrUnknownPreference)
}

func TestParsePreference(t *testing.T) {
	for _, p := range []Preference{PrefMorning, PrefAfternoon, PrefEvening, PrefPopular, PrefQuiet, PrefEarliest} {
		got, err := ParsePreference(string(p))
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}

	_, err := ParsePreference("midnight")
	assert.ErrorIs(t, err, ErrUnknownPreference)
}
