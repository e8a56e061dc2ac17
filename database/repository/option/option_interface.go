package optionRepo

import "docportal/models"

// OptionRepository defines data access for the appointment option catalog.
// The catalog is seeded out of band and treated as read-only here.
type OptionRepository interface {
	// GetAll returns the full catalog with each option's original slot list.
	GetAll() ([]models.AppointmentOption, error)
	// GetNames returns the catalog projected down to treatment names.
	GetNames() ([]models.AppointmentOption, error)
}
