package services

import (
	"fmt"
	"strconv"
	"time"

	"fieldops/internal/core/domain/model/booking"
	"fieldops/internal/pkg/errs"
)

// scheduleTimeLayout is the fixed rendering used for scheduled start times in
// every reminder channel, so push, socket, and SMS always show identical times.
const scheduleTimeLayout = "Mon, 2 Jan 2006 at 3:04 PM"

// ReminderMessage is a composed, channel-agnostic notification payload.
// The Data map travels with push and socket deliveries; SMS uses Body only.
type ReminderMessage struct {
	Title string
	Body  string
	Data  map[string]string
}

// ReminderComposer is a domain service that translates (booking, reminder stage)
// into the message delivered to the assigned technician, and composes the
// customer-facing notice sent when a booking is re-broadcast after a no-show.
//
// Composition is pure: the composer performs no I/O and resolves no identities.
// Callers look up the technician's contact details first and pass the display
// name in.
//
// All times are rendered in a single fixed location so a technician never sees
// two reminders disagree about the start time.
type ReminderComposer struct {
	location *time.Location
}

// NewReminderComposer creates a composer rendering times in the given location.
// A nil location falls back to UTC.
func NewReminderComposer(location *time.Location) ReminderComposer {
	if location == nil {
		location = time.UTC
	}
	return ReminderComposer{location: location}
}

// Compose builds the technician-facing message for the given reminder stage.
//
// The Data map always carries the booking id, the stage tag, and the scheduled
// start in RFC 3339; the 15-minute stage additionally carries the service
// address coordinates for navigation.
//
// Returns a validation error if the booking is not constructed, the stage is
// unknown, or the technician name is empty.
func (c ReminderComposer) Compose(
	b *booking.Booking,
	kind booking.ReminderKind,
	technicianName string,
) (ReminderMessage, error) {
	if err := b.Validate(); err != nil {
		return ReminderMessage{}, err
	}
	if err := kind.Validate(); err != nil {
		return ReminderMessage{}, err
	}
	if technicianName == "" {
		return ReminderMessage{}, errs.NewValueIsRequiredError("technician name")
	}

	startsAt := b.ScheduledAt().In(c.location).Format(scheduleTimeLayout)

	data := map[string]string{
		"bookingId":   b.ID().String(),
		"reminder":    kind.String(),
		"scheduledAt": b.ScheduledAt().UTC().Format(time.RFC3339),
	}

	var title, body string
	switch kind {
	case booking.Reminder24Hour:
		title = "Service visit tomorrow"
		body = fmt.Sprintf("Hi %s, you have a service visit on %s. Please plan your day around it.",
			technicianName, startsAt)
	case booking.Reminder1Hour:
		title = "Service visit in about an hour"
		body = fmt.Sprintf("Hi %s, your service visit starts at %s. Please be ready to head out.",
			technicianName, startsAt)
	case booking.Reminder15Minute:
		title = "Time to leave for your visit"
		body = fmt.Sprintf("Hi %s, your visit at %s starts shortly. Tap for directions to the service address.",
			technicianName, startsAt)
	case booking.ReminderUnknown:
	}

	if kind.IncludesNavigation() {
		loc := b.Location()
		data["latitude"] = strconv.FormatFloat(loc.Latitude(), 'f', -1, 64)
		data["longitude"] = strconv.FormatFloat(loc.Longitude(), 'f', -1, 64)
	}

	return ReminderMessage{
		Title: title,
		Body:  body,
		Data:  data,
	}, nil
}

// ComposeRebroadcast builds the customer-facing notice sent after a no-show
// recovery, when the booking has returned to the technician pool.
func (c ReminderComposer) ComposeRebroadcast(b *booking.Booking) (ReminderMessage, error) {
	if err := b.Validate(); err != nil {
		return ReminderMessage{}, err
	}

	startsAt := b.ScheduledAt().In(c.location).Format(scheduleTimeLayout)

	return ReminderMessage{
		Title: "We are finding you a new technician",
		Body: fmt.Sprintf("Your technician could not make it to your booking on %s. "+
			"We are already reassigning it. No action is needed from you.", startsAt),
		Data: map[string]string{
			"bookingId":   b.ID().String(),
			"scheduledAt": b.ScheduledAt().UTC().Format(time.RFC3339),
		},
	}, nil
}
