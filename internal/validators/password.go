package validators

import (
	"errors"
	"fmt"

	"recipe-app-api/internal/constants"
)

var (
	ErrPasswordEmpty    = errors.New("no password provided")
	ErrPasswordTooShort = fmt.Errorf("password must be at least %d characters long", constants.MinPasswordLength)
	ErrPasswordTooLong  = errors.New("password is too long")
)

func ValidatePassword(p string) error {
	if p == "" {
		return ErrPasswordEmpty
	}

	if len(p) < constants.MinPasswordLength {
		return ErrPasswordTooShort
	}

	if len(p) > 255 {
		return ErrPasswordTooLong
	}

	return nil
}
