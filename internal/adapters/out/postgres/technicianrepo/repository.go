package technicianrepo

import (
	"context"
	"errors"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/technician"
	"fieldops/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTechnicianRepository implements TechnicianDirectory using GORM.
type GormTechnicianRepository struct {
	db *gorm.DB
}

// NewGormTechnicianRepository creates a new GORM technician repository.
func NewGormTechnicianRepository(db *gorm.DB) *GormTechnicianRepository {
	return &GormTechnicianRepository{db: db}
}

// GetContact retrieves a technician's contact card by ID.
func (r *GormTechnicianRepository) GetContact(
	ctx context.Context,
	id kernel.UUID,
) (technician.Contact, error) {
	if err := id.Validate(); err != nil {
		return technician.Contact{}, err
	}

	var dto TechnicianDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return technician.Contact{}, errs.NewObjectNotFoundError("technician", id.String())
		}
		return technician.Contact{}, err
	}

	return toDomain(dto)
}
