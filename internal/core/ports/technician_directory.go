package ports

import (
	"context"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/technician"
)

// TechnicianDirectory resolves technician contact details for notifications.
type TechnicianDirectory interface {
	// GetContact returns the contact card for the technician. A missing
	// technician yields errs.ObjectNotFoundError.
	GetContact(ctx context.Context, id kernel.UUID) (technician.Contact, error)
}
