package booking

import "fmt"

// Minute is a time of day expressed as minutes after midnight.
type Minute int

// Clock formats the minute as "HH:MM".
func (m Minute) Clock() string {
	return fmt.Sprintf("%02d:%02d", int(m)/60, int(m)%60)
}

// ParseClock parses an "HH:MM" string into a Minute.
func ParseClock(s string) (Minute, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid time %q", s)
	}
	return Minute(h*60 + m), nil
}

// Window is the operating day: slot starts are enumerated from Open
// (inclusive) to Close (exclusive) every Step minutes.
type Window struct {
	Open  Minute
	Close Minute
	Step  int
}

// DefaultWindow is the fixed 09:00-18:00 day at 30-minute granularity.
// Treated as static configuration for now; a per-service schedule would
// slot in here.
var DefaultWindow = Window{Open: 9 * 60, Close: 18 * 60, Step: 30}

// Times enumerates every slot start in the window, ascending.
func (w Window) Times() []Minute {
	var times []Minute
	for t := w.Open; t < w.Close; t += Minute(w.Step) {
		times = append(times, t)
	}
	return times
}

// Aligned reports whether t is one of the window's slot starts.
func (w Window) Aligned(t Minute) bool {
	if t < w.Open || t >= w.Close {
		return false
	}
	return int(t-w.Open)%w.Step == 0
}

// Fits reports whether an appointment of the given duration starting at t
// stays within the operating window.
func (w Window) Fits(t Minute, durationMinutes int) bool {
	return w.Aligned(t) && t+Minute(durationMinutes) <= w.Close
}

// TimeSlot is one candidate appointment start, marked with whether a new
// booking of the queried service could occupy it.
type TimeSlot struct {
	Start     Minute
	Available bool
	BookingID string // occupying booking, when unavailable because of one
}

// Availability marks every slot in the window against the given bookings.
//
// A slot is unavailable when the interval [t, t+durationMinutes) overlaps
// any active booking's interval, or when it would run past the window
// close. Overlap is an interval test, not an exact start-time comparison:
// a 90-minute booking at 10:00 blocks 09:00 through 11:00 for another
// 90-minute appointment.
func (w Window) Availability(durationMinutes int, active []*Booking) []TimeSlot {
	times := w.Times()
	slots := make([]TimeSlot, 0, len(times))

	for _, t := range times {
		slot := TimeSlot{Start: t, Available: true}

		if t+Minute(durationMinutes) > w.Close {
			slot.Available = false
		}

		for _, b := range active {
			if !b.Status.Active() {
				continue
			}
			if t < b.End() && t+Minute(durationMinutes) > b.Start {
				slot.Available = false
				slot.BookingID = b.ID
				break
			}
		}

		slots = append(slots, slot)
	}

	return slots
}
