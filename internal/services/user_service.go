package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/savorly/mealplan-backend/internal/models"
	"github.com/savorly/mealplan-backend/internal/store"
	"golang.org/x/crypto/bcrypt"
)

var ErrUsernameTaken = errors.New("username already exists")

type UserService struct {
	users  store.CredentialStore
	prefs  store.PreferenceStore
	tokens *TokenService
}

func NewUserService(users store.CredentialStore, prefs store.PreferenceStore, tokens *TokenService) *UserService {
	return &UserService{users: users, prefs: prefs, tokens: tokens}
}

func (s *UserService) GetUser(id string) (*models.User, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrUserNotFound
	}
	user, err := s.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) CreateUser(username, password string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, ErrMissingFields
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.users.Create(username, string(hash))
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}
	return user, nil
}

// UpdateUser changes a user's username and, optionally, password. On
// success it also returns a fresh refresh token bound to the new
// username so the caller can re-issue the session cookie.
func (s *UserService) UpdateUser(id, username, password string) (*models.User, string, error) {
	if id == "" || username == "" {
		return nil, "", ErrMissingFields
	}
	userID, err := uuid.Parse(id)
	if err != nil {
		return nil, "", ErrUserNotFound
	}

	user, err := s.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, "", ErrUserNotFound
		}
		return nil, "", err
	}

	user.Username = username
	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, "", fmt.Errorf("failed to hash password: %w", err)
		}
		user.Password = string(hash)
	}

	updated, err := s.users.Update(user)
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, "", ErrUsernameTaken
		}
		return nil, "", err
	}

	refreshToken, err := s.tokens.IssueRefreshToken(updated.Username)
	if err != nil {
		return nil, "", fmt.Errorf("failed to sign refresh token: %w", err)
	}
	return updated, refreshToken, nil
}

// DeleteUser removes a user and cascades to their preference record.
func (s *UserService) DeleteUser(id string) error {
	if id == "" {
		return ErrMissingFields
	}
	userID, err := uuid.Parse(id)
	if err != nil {
		return ErrUserNotFound
	}

	if _, err := s.users.FindByID(userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if err := s.prefs.DeleteByUser(userID); err != nil {
		return err
	}
	return s.users.Delete(userID)
}
