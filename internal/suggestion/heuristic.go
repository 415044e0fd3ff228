package suggestion

import (
	"context"

	"github.com/helloChirag28/BookEase/internal/booking"
)

const (
	noonMinute    = 12 * 60
	eveningMinute = 17 * 60
)

// Peak bands used by the popular/quiet preferences. Fixed bands keep the
// choice deterministic and explainable.
var peakBands = [][2]booking.Minute{
	{10 * 60, 12 * 60},
	{15 * 60, 17 * 60},
}

func inPeakBand(t booking.Minute) bool {
	for _, band := range peakBands {
		if t >= band[0] && t < band[1] {
			return true
		}
	}
	return false
}

// Heuristic is the local, deterministic Suggester: filter the available
// slots by the preference predicate and pick the earliest match. If the
// filter matches nothing, fall back to the full available set.
type Heuristic struct{}

func NewHeuristic() Heuristic {
	return Heuristic{}
}

func (Heuristic) Suggest(ctx context.Context, pref Preference, available []booking.Minute) (Suggestion, error) {
	if len(available) == 0 {
		return Suggestion{}, ErrNoAvailableSlots
	}

	var predicate func(booking.Minute) bool
	var reason string

	switch pref {
	case PrefMorning:
		predicate = func(t booking.Minute) bool { return t < noonMinute }
		reason = "Perfect for starting your day fresh!"
	case PrefAfternoon:
		predicate = func(t booking.Minute) bool { return t >= noonMinute && t < eveningMinute }
		reason = "Great timing for a midday refresh!"
	case PrefEvening:
		predicate = func(t booking.Minute) bool { return t >= eveningMinute }
		reason = "Unwind after a busy day!"
	case PrefPopular:
		predicate = inPeakBand
		reason = "Our most popular time of day!"
	case PrefQuiet:
		predicate = func(t booking.Minute) bool { return !inPeakBand(t) }
		reason = "Enjoy a more peaceful experience!"
	case PrefEarliest:
		predicate = func(booking.Minute) bool { return true }
		reason = "The earliest available slot!"
	default:
		return Suggestion{}, ErrUnknownPreference
	}

	// Slots arrive in ascending order from the availability engine, so the
	// first match is the earliest.
	for _, t := range available {
		if predicate(t) {
			return Suggestion{Time: t, Reason: reason}, nil
		}
	}

	return Suggestion{
		Time:   available[0],
		Reason: "The closest match to your preference!",
	}, nil
}
