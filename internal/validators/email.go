// Package validators holds input checks shared between the user service and
// the HTTP handlers.
package validators

import (
	"errors"
	"net/mail"
	"strings"
)

var (
	ErrEmailEmpty   = errors.New("user must have an email address")
	ErrEmailInvalid = errors.New("invalid email address")
)

func ValidateEmail(e string) error {
	if e == "" {
		return ErrEmailEmpty
	}

	if _, err := mail.ParseAddress(e); err != nil {
		return ErrEmailInvalid
	}

	return nil
}

// NormalizeEmail lowercases the domain portion of an address. The local part
// is left untouched since it is case-sensitive per RFC 5321.
func NormalizeEmail(e string) string {
	e = strings.TrimSpace(e)
	at := strings.LastIndex(e, "@")
	if at < 0 {
		return e
	}
	return e[:at+1] + strings.ToLower(e[at+1:])
}
