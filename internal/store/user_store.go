package store

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/savorly/mealplan-backend/internal/models"
	"gorm.io/gorm"
)

// CredentialStore handles persistence for user records. Username lookups
// are case-insensitive so duplicate detection and login cannot disagree.
type CredentialStore interface {
	FindByUsername(username string) (*models.User, error)
	FindByID(id uuid.UUID) (*models.User, error)
	Create(username, passwordHash string) (*models.User, error)
	Update(user *models.User) (*models.User, error)
	Delete(id uuid.UUID) error
}

type GormCredentialStore struct {
	db *gorm.DB
}

func NewCredentialStore(db *gorm.DB) *GormCredentialStore {
	return &GormCredentialStore{db: db}
}

func (s *GormCredentialStore) FindByUsername(username string) (*models.User, error) {
	var user models.User
	err := s.db.Where("LOWER(username) = LOWER(?)", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to look up user by username: %w", err)
	}
	return &user, nil
}

func (s *GormCredentialStore) FindByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	err := s.db.First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to look up user by id: %w", err)
	}
	return &user, nil
}

func (s *GormCredentialStore) Create(username, passwordHash string) (*models.User, error) {
	if _, err := s.FindByUsername(username); err == nil {
		return nil, ErrDuplicate
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	user := models.User{
		ID:       uuid.New(),
		Username: username,
		Password: passwordHash,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, nil
}

func (s *GormCredentialStore) Update(user *models.User) (*models.User, error) {
	if existing, err := s.FindByUsername(user.Username); err == nil {
		if existing.ID != user.ID {
			return nil, ErrDuplicate
		}
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	if err := s.db.Save(user).Error; err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

func (s *GormCredentialStore) Delete(id uuid.UUID) error {
	result := s.db.Delete(&models.User{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
