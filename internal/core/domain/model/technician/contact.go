// Package technician holds the slice of the technician identity this service
// needs: the contact details used to address reminders. Technician lifecycle and
// profile management are owned by an external identity service.
package technician

import (
	"errors"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/pkg/errs"
	"fieldops/internal/pkg/guard"
)

// ErrContactIsNotConstructed is returned when a Contact was not created via NewContact.
var ErrContactIsNotConstructed = errors.New("Contact must be created via NewContact constructor")

// Contact is an immutable value object carrying the resolvable delivery
// endpoints of a technician: the display name used in message bodies and the
// phone number used for SMS.
type Contact struct {
	id    kernel.UUID
	name  string
	phone string
	guard guard.ConstructorGuard
}

// NewContact creates a validated Contact. The name is required; the phone number
// may be empty, in which case SMS delivery is skipped for this technician.
func NewContact(id kernel.UUID, name, phone string) (Contact, error) {
	if err := id.Validate(); err != nil {
		return Contact{}, err
	}
	if name == "" {
		return Contact{}, errs.NewValueIsRequiredError("technician name")
	}

	return Contact{
		id:    id,
		name:  name,
		phone: phone,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Contact was created via NewContact.
func (c Contact) Validate() error {
	return c.guard.Validate(ErrContactIsNotConstructed)
}

// ID returns the technician's identifier.
func (c Contact) ID() kernel.UUID {
	return c.id
}

// Name returns the technician's display name.
func (c Contact) Name() string {
	return c.name
}

// Phone returns the technician's phone number; empty when unknown.
func (c Contact) Phone() string {
	return c.phone
}

// HasPhone reports whether SMS delivery is possible for this technician.
func (c Contact) HasPhone() bool {
	return c.phone != ""
}
