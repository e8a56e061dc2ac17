package doctor

import (
	"errors"
	"fmt"

	doctorRepo "docportal/database/repository/doctor"
	"docportal/models"

	"github.com/google/uuid"
)

// ErrNotFound is returned when an id-based doctor lookup misses.
var ErrNotFound = errors.New("doctor not found")

// DoctorService manages the doctor roster. All mutations are admin-gated at
// the transport layer.
type DoctorService interface {
	GetAll() ([]models.Doctor, error)
	Add(doctor *models.Doctor) (*models.Doctor, error)
	Remove(id string) error
}

// DefaultDoctorService is the production implementation of DoctorService.
type DefaultDoctorService struct {
	Repo doctorRepo.DoctorRepository
}

func (s *DefaultDoctorService) GetAll() ([]models.Doctor, error) {
	return s.Repo.GetAll()
}

func (s *DefaultDoctorService) Add(d *models.Doctor) (*models.Doctor, error) {
	if d.Name == "" || d.Specialty == "" {
		return nil, fmt.Errorf("doctor requires name and specialty")
	}
	d.ID = uuid.New().String()
	if err := s.Repo.Create(d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *DefaultDoctorService) Remove(id string) error {
	if err := s.Repo.Delete(id); err != nil {
		if errors.Is(err, doctorRepo.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
