package user

import (
	"errors"
	"fmt"
	"time"

	userRepo "docportal/database/repository/user"
	"docportal/models"
	"docportal/utils"

	"github.com/google/uuid"
)

// ErrUnknownEmail is returned when a token is requested for an email that
// has never registered.
var ErrUnknownEmail = errors.New("email is not registered")

// ErrNotFound is returned when an id-based user lookup misses.
var ErrNotFound = errors.New("user not found")

const tokenTTL = time.Hour

// DefaultUserService is the production implementation of UserService.
type DefaultUserService struct {
	Repo userRepo.UserRepository
	JWT  *utils.JWTManager
}

// Register upserts the user. New users get a fresh id; re-registering an
// existing email updates the name only.
func (s *DefaultUserService) Register(u *models.User) error {
	if u.Email == "" {
		return fmt.Errorf("email is required")
	}
	u.ID = uuid.New().String()
	return s.Repo.Upsert(u)
}

// GetAll returns every registered user.
func (s *DefaultUserService) GetAll() ([]models.User, error) {
	return s.Repo.GetAll()
}

// IsAdmin reports whether the email belongs to an admin user.
func (s *DefaultUserService) IsAdmin(email string) (bool, error) {
	u, err := s.Repo.GetByEmail(email)
	if err != nil {
		return false, err
	}
	if u == nil {
		return false, nil
	}
	return u.IsAdmin(), nil
}

// PromoteToAdmin grants the admin role, mapping the repository miss.
func (s *DefaultUserService) PromoteToAdmin(id string) error {
	if err := s.Repo.PromoteToAdmin(id); err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// IssueToken signs a token for a registered email. Unregistered emails are
// refused so a token can never be minted for an email the portal has not
// seen.
func (s *DefaultUserService) IssueToken(email string) (string, error) {
	u, err := s.Repo.GetByEmail(email)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", ErrUnknownEmail
	}
	return s.JWT.GenerateToken(email, tokenTTL)
}
