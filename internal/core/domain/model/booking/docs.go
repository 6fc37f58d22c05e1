// Package booking contains the Booking aggregate and its supporting value
// objects: the lifecycle Status machine, the per-assignment reminder flags, and
// the ReminderKind stage configuration (selection windows, SMS and navigation
// behavior).
//
// The aggregate encodes every transition the lifecycle engine owns (activation,
// acceptance, reminder bookkeeping, and no-show recovery) as guarded methods.
// The persistence layer mirrors those guards inside conditional updates, which
// is what makes concurrent execution of the timed jobs safe.
package booking
