package services

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"recipe-app-api/internal/models"
	"recipe-app-api/internal/repository"
	"recipe-app-api/internal/utils"
	"recipe-app-api/internal/validators"
)

var (
	// ErrInvalidCredentials covers wrong email, wrong password, and inactive
	// accounts alike so that responses never reveal which one it was.
	ErrInvalidCredentials  = errors.New("unable to authenticate with provided credentials")
	ErrInvalidToken        = errors.New("invalid or expired token")
	ErrFailedToCreateToken = errors.New("failed to create token")
)

// AuthService exchanges credentials for tokens and resolves tokens to users.
type AuthService struct {
	userRepo  repository.UserRepository
	tokenRepo repository.TokenRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, tokenRepo repository.TokenRepository) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
	}
}

// Authenticate verifies credentials and returns the matching active user.
func (s *AuthService) Authenticate(email, password string) (*models.User, error) {
	user, err := s.userRepo.FindByEmail(validators.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// IssueToken returns the user's token, creating one on first login.
func (s *AuthService) IssueToken(userID uint64) (*models.AuthToken, error) {
	token, err := s.tokenRepo.FindByUserID(userID)
	if err == nil {
		return token, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up token: %w", err)
	}

	key, err := utils.GenerateTokenKey()
	if err != nil {
		return nil, ErrFailedToCreateToken
	}

	token = &models.AuthToken{
		Key:    key,
		UserID: userID,
	}
	if err := s.tokenRepo.Create(token); err != nil {
		return nil, ErrFailedToCreateToken
	}

	return token, nil
}

// ResolveToken maps a presented key to its active owner.
func (s *AuthService) ResolveToken(key string) (*models.User, error) {
	token, err := s.tokenRepo.FindByKey(key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, fmt.Errorf("failed to look up token: %w", err)
	}

	if !token.User.IsActive {
		return nil, ErrInvalidToken
	}

	return &token.User, nil
}
