// Package technicianrepo provides read access to technician contact details.
// The lifecycle engine does not own technician records; it only reads the
// contact card when composing reminders, so the repository exposes a lookup
// rather than full aggregate persistence.
package technicianrepo

import (
	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/technician"

	"github.com/google/uuid"
)

// TechnicianDTO represents the technicians table.
type TechnicianDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string
	Phone string
}

// TableName specifies the database table name for technician entities.
func (TechnicianDTO) TableName() string {
	return "technicians"
}

func toDomain(dto TechnicianDTO) (technician.Contact, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return technician.Contact{}, err
	}

	return technician.NewContact(id, dto.Name, dto.Phone)
}
