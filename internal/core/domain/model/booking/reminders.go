package booking

import (
	"fmt"
	"time"

	"fieldops/internal/pkg/errs"
)

// ReminderKind identifies one of the three fixed lead-time reminder stages that
// fire before a booking's scheduled start.
type ReminderKind int

const (
	// ReminderUnknown represents an invalid or undefined reminder kind.
	ReminderUnknown ReminderKind = iota

	// Reminder24Hour is the day-ahead heads-up sent roughly 24 hours before the
	// scheduled start.
	Reminder24Hour

	// Reminder1Hour is sent roughly one hour before the scheduled start and is
	// additionally delivered over SMS.
	Reminder1Hour

	// Reminder15Minute is the leave-now reminder sent roughly 15 minutes before
	// the scheduled start; it carries navigation coordinates and is additionally
	// delivered over SMS.
	Reminder15Minute
)

// ReminderKinds lists all valid reminder stages in firing order.
// Useful for iterating reminder configuration (e.g. starting one job per stage).
func ReminderKinds() []ReminderKind {
	return []ReminderKind{Reminder24Hour, Reminder1Hour, Reminder15Minute}
}

// Validate checks that the kind is one of the defined reminder stages.
func (k ReminderKind) Validate() error {
	switch k {
	case Reminder24Hour, Reminder1Hour, Reminder15Minute:
		return nil
	case ReminderUnknown:
	}
	return errs.NewValueIsInvalidErrorWithCause("reminder kind is invalid",
		fmt.Errorf("%d is not a valid reminder kind", k))
}

// String returns the short stage tag used in logs and message payloads.
func (k ReminderKind) String() string {
	switch k {
	case Reminder24Hour:
		return "24h"
	case Reminder1Hour:
		return "1h"
	case Reminder15Minute:
		return "15min"
	case ReminderUnknown:
	}
	return "unknown"
}

// Lead returns the nominal lead time of the stage before the scheduled start.
func (k ReminderKind) Lead() time.Duration {
	switch k {
	case Reminder24Hour:
		return 24 * time.Hour
	case Reminder1Hour:
		return time.Hour
	case Reminder15Minute:
		return 15 * time.Minute
	case ReminderUnknown:
	}
	return 0
}

// Window returns the inclusive [from, to] selection window, relative to now,
// within which a booking's scheduled start makes it eligible for this stage.
// Each window is deliberately wider than the stage's tick interval so a delayed
// tick cannot skip a booking; the sent flag prevents duplicates across the
// overlap.
func (k ReminderKind) Window(now time.Time) (time.Time, time.Time) {
	switch k {
	case Reminder24Hour:
		return now.Add(23 * time.Hour), now.Add(25 * time.Hour)
	case Reminder1Hour:
		return now.Add(55 * time.Minute), now.Add(65 * time.Minute)
	case Reminder15Minute:
		return now.Add(10 * time.Minute), now.Add(20 * time.Minute)
	case ReminderUnknown:
	}
	return now, now
}

// RequiresSMS reports whether the stage is additionally delivered over SMS.
func (k ReminderKind) RequiresSMS() bool {
	return k == Reminder1Hour || k == Reminder15Minute
}

// IncludesNavigation reports whether the stage carries the service-address
// coordinates for navigation.
func (k ReminderKind) IncludesNavigation() bool {
	return k == Reminder15Minute
}

// Reminders tracks which reminder stages have fired for the current technician
// assignment. It is an immutable value object; mutating operations return a new
// value. All flags reset whenever the assignment is cleared.
type Reminders struct {
	h24   bool
	h1    bool
	min15 bool
}

// NewReminders returns the initial state with no stage sent.
func NewReminders() Reminders {
	return Reminders{}
}

// RestoreReminders reconstructs the flags from persistence.
func RestoreReminders(h24, h1, min15 bool) Reminders {
	return Reminders{h24: h24, h1: h1, min15: min15}
}

// Sent reports whether the given stage has already fired for the current
// assignment.
func (r Reminders) Sent(kind ReminderKind) bool {
	switch kind {
	case Reminder24Hour:
		return r.h24
	case Reminder1Hour:
		return r.h1
	case Reminder15Minute:
		return r.min15
	case ReminderUnknown:
	}
	return false
}

// Any reports whether any stage has fired.
func (r Reminders) Any() bool {
	return r.h24 || r.h1 || r.min15
}

// markSent returns a copy with the given stage flagged as sent.
func (r Reminders) markSent(kind ReminderKind) Reminders {
	switch kind {
	case Reminder24Hour:
		r.h24 = true
	case Reminder1Hour:
		r.h1 = true
	case Reminder15Minute:
		r.min15 = true
	case ReminderUnknown:
	}
	return r
}
