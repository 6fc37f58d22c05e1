package booking

import (
	"fmt"

	"fieldops/internal/pkg/errs"
)

// Status represents the lifecycle state of a booking.
// It implements a state machine with defined transitions; only the transitions
// owned by the lifecycle engine are modeled as operations here. The downstream
// execution states (OnTheWay and later) are written by collaborating services
// and only validated on restore.
//
// Transitions owned by this engine:
//
//	Scheduled ──> Requested ──> Accepted
//	                  ^             │
//	                  └─────────────┘
//	            (no-show recovery releases the booking)
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and logging.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Scheduled is the initial status of a booking created for a future slot.
	// No technician is assigned and no discovery has been triggered yet.
	Scheduled

	// Requested indicates the booking has been broadcast to eligible
	// technicians and is waiting for one of them to accept.
	Requested

	// Accepted indicates a technician has committed to the booking.
	// Reminder stages only fire in this status.
	Accepted

	// OnTheWay indicates the technician has started traveling to the service
	// address. Owned by the execution flow, never written by this engine.
	OnTheWay

	// Reached indicates the technician has arrived. Owned by the execution flow.
	Reached

	// InProgress indicates the service work has started. Owned by the execution flow.
	InProgress

	// Completed indicates the service work has finished. Final state.
	Completed
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Scheduled:  "Scheduled",
		Requested:  "Requested",
		Accepted:   "Accepted",
		OnTheWay:   "OnTheWay",
		Reached:    "Reached",
		InProgress: "InProgress",
		Completed:  "Completed",
	}
}

// getValidStatusStrings returns a map of only valid Status values,
// used for validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Scheduled:  "Scheduled",
		Requested:  "Requested",
		Accepted:   "Accepted",
		OnTheWay:   "OnTheWay",
		Reached:    "Reached",
		InProgress: "InProgress",
		Completed:  "Completed",
	}
}

// Validate checks if the Status value is one of the defined lifecycle states.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status, or "Unknown" for
// invalid values. Safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Activate transitions the status to Requested.
//
// Valid transitions:
//   - Scheduled -> Requested (booking due soon, technician discovery begins)
//
// Returns (0, error) if the booking is not in Scheduled status.
func (s Status) Activate() (Status, error) {
	if s != Scheduled {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to activate", s.String()),
		)
	}

	return Requested, nil
}

// Accept transitions the status to Accepted.
//
// Valid transitions:
//   - Requested -> Accepted (a technician committed to the booking)
//
// Returns (0, error) if the booking is not in Requested status.
func (s Status) Accept() (Status, error) {
	if s != Requested {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to accept", s.String()),
		)
	}

	return Accepted, nil
}

// Release transitions the status back to Requested.
//
// Valid transitions:
//   - Accepted -> Requested (no-show recovery returns the booking to the pool)
//
// Returns (0, error) if the booking is not in Accepted status.
func (s Status) Release() (Status, error) {
	if s != Accepted {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to release", s.String()),
		)
	}

	return Requested, nil
}

// ValidateCanHaveTechnician validates the consistency between booking status and
// technician assignment.
//
// Business rules:
//   - Scheduled and Requested bookings must not have a technician assigned
//   - Accepted and later statuses must have a technician assigned
func (s Status) ValidateCanHaveTechnician(technician bool) error {
	if technician && (s == Scheduled || s == Requested) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a technician", s.String()),
		)
	}

	if !technician && s != Scheduled && s != Requested {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no technician", s.String()),
		)
	}

	return nil
}
