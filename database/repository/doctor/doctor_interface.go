package doctorRepo

import (
	"errors"

	"docportal/models"
)

// ErrNotFound is returned when an id-based lookup misses.
var ErrNotFound = errors.New("doctor not found")

// DoctorRepository defines data access for the doctor roster.
type DoctorRepository interface {
	GetAll() ([]models.Doctor, error)
	Create(doctor *models.Doctor) error
	// Delete removes a roster entry; ErrNotFound if the id misses.
	Delete(id string) error
}
