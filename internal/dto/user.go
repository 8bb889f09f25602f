package dto

import (
	"recipe-app-api/internal/models"
)

// UserDTO represents a user in API responses. The password hash never leaves
// the model layer.
type UserDTO struct {
	ID    uint64 `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// TokenDTO represents an issued auth token.
type TokenDTO struct {
	Token string `json:"token"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
	}
}

// ToTokenDTO converts an AuthToken model to TokenDTO
func ToTokenDTO(token models.AuthToken) TokenDTO {
	return TokenDTO{Token: token.Key}
}
