package services

import (
	"errors"
	"fmt"

	"github.com/savorly/mealplan-backend/internal/store"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrMissingFields      = errors.New("all fields are required")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserNotFound       = errors.New("user not found")
)

// AuthService orchestrates login and session refresh. Every operation
// re-derives truth from the credential store; nothing is cached between
// requests.
type AuthService struct {
	users  store.CredentialStore
	tokens *TokenService
}

func NewAuthService(users store.CredentialStore, tokens *TokenService) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Login verifies credentials and returns an access and a refresh token.
// Unknown usernames and wrong passwords are indistinguishable to the
// caller.
func (s *AuthService) Login(username, password string) (accessToken, refreshToken string, err error) {
	if username == "" || password == "" {
		return "", "", ErrMissingFields
	}

	user, err := s.users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", "", ErrInvalidCredentials
		}
		return "", "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", "", ErrInvalidCredentials
	}

	accessToken, err = s.tokens.IssueAccessToken(user.Username, user.ID)
	if err != nil {
		return "", "", fmt.Errorf("failed to sign access token: %w", err)
	}
	refreshToken, err = s.tokens.IssueRefreshToken(user.Username)
	if err != nil {
		return "", "", fmt.Errorf("failed to sign refresh token: %w", err)
	}
	return accessToken, refreshToken, nil
}

// Refresh mints a new access token from a refresh token. The user is
// looked up again on every call, so a deleted or renamed account loses
// refresh capability immediately. The refresh token is not rotated.
func (s *AuthService) Refresh(refreshToken string) (string, error) {
	claims, err := s.tokens.VerifyRefreshToken(refreshToken)
	if err != nil {
		return "", ErrInvalidToken
	}

	user, err := s.users.FindByUsername(claims.Username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrUserNotFound
		}
		return "", err
	}

	accessToken, err := s.tokens.IssueAccessToken(user.Username, user.ID)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}
	return accessToken, nil
}
