package suggestion

import (
	"context"
	"net/http"

	"github.com/helloChirag28/BookEase/internal/booking"
	"github.com/helloChirag28/BookEase/internal/pkg/apperror"
)

var (
	ErrUnknownPreference = apperror.New(http.StatusBadRequest, "unknown preference")
	ErrNoAvailableSlots  = apperror.New(http.StatusConflict, "no available slots for that day")
)

// Preference is a coarse customer tag for choosing a slot.
type Preference string

const (
	PrefMorning   Preference = "morning"   // before 12:00
	PrefAfternoon Preference = "afternoon" // 12:00 to 17:00
	PrefEvening   Preference = "evening"   // 17:00 onwards
	PrefPopular   Preference = "popular"   // peak bands
	PrefQuiet     Preference = "quiet"     // outside the peak bands
	PrefEarliest  Preference = "earliest"
)

// ParsePreference validates a preference string.
func ParsePreference(s string) (Preference, error) {
	switch p := Preference(s); p {
	case PrefMorning, PrefAfternoon, PrefEvening, PrefPopular, PrefQuiet, PrefEarliest:
		return p, nil
	}
	return "", ErrUnknownPreference
}

// Suggestion is one recommended slot with a short human-readable reason.
type Suggestion struct {
	Time   booking.Minute
	Reason string
}

// Suggester picks one slot out of the available set for a preference.
// Implementations must only ever return a time that is in the available
// set; the booking flow trusts that invariant.
type Suggester interface {
	Suggest(ctx context.Context, pref Preference, available []booking.Minute) (Suggestion, error)
}
