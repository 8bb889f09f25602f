package services

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"recipe-app-api/internal/models"
	"recipe-app-api/internal/repository"
	"recipe-app-api/internal/validators"
)

var (
	ErrEmailTaken           = errors.New("a user with that email already exists")
	ErrUserNotFound         = errors.New("user not found")
	ErrFailedToHashPassword = errors.New("failed to hash password")
	ErrFailedToCreateUser   = errors.New("failed to create user")
)

// UserService handles account creation and profile management.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// CreateUserInput represents the required information to register an account.
type CreateUserInput struct {
	Email    string
	Password string
	Name     string
}

// Create registers a new user with a normalized email and a hashed password.
func (s *UserService) Create(input CreateUserInput) (*models.User, error) {
	if err := validators.ValidateEmail(input.Email); err != nil {
		return nil, err
	}
	if err := validators.ValidatePassword(input.Password); err != nil {
		return nil, err
	}

	email := validators.NormalizeEmail(input.Email)

	if _, err := s.userRepo.FindByEmail(email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hashedPassword),
		Name:         input.Name,
		IsActive:     true,
	}

	if err := s.userRepo.Create(user); err != nil {
		// Backstop for a registration racing past the email pre-check and
		// losing against the unique index.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, ErrFailedToCreateUser
	}

	return user, nil
}

// CreateSuperuser registers a user and grants staff and superuser flags.
func (s *UserService) CreateSuperuser(email, password string) (*models.User, error) {
	user, err := s.Create(CreateUserInput{Email: email, Password: password})
	if err != nil {
		return nil, err
	}

	user.IsStaff = true
	user.IsSuperuser = true
	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to promote user: %w", err)
	}

	return user, nil
}

// Get retrieves a user by ID.
func (s *UserService) Get(id uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}

// UpdateUserInput carries the fields a user may change on their own profile.
// Nil pointers are left untouched on partial updates.
type UpdateUserInput struct {
	Email    *string
	Password *string
	Name     *string
}

// Update applies a profile update. A supplied password is validated and
// re-hashed, never stored as given.
func (s *UserService) Update(id uint64, input UpdateUserInput) (*models.User, error) {
	user, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if input.Email != nil {
		if err := validators.ValidateEmail(*input.Email); err != nil {
			return nil, err
		}
		email := validators.NormalizeEmail(*input.Email)

		if email != user.Email {
			if _, err := s.userRepo.FindByEmail(email); err == nil {
				return nil, ErrEmailTaken
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("failed to check email: %w", err)
			}
		}
		user.Email = email
	}

	if input.Name != nil {
		user.Name = *input.Name
	}

	if input.Password != nil {
		if err := validators.ValidatePassword(*input.Password); err != nil {
			return nil, err
		}
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, ErrFailedToHashPassword
		}
		user.PasswordHash = string(hashedPassword)
	}

	if err := s.userRepo.Update(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}
