// Package password hashes the credentials stored in the Users table.
package password

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const DefaultCost = bcrypt.DefaultCost

var (
	ErrInvalidPassword = errors.New("invalid password")
	ErrEmptyPassword   = errors.New("password cannot be empty")
)

func Hash(plain string) (string, error) {
	if plain == "" {
		return "", ErrEmptyPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hashed), nil
}

// IsHash reports whether stored looks like a bcrypt hash rather than a plain text value.
func IsHash(stored string) bool {
	_, err := bcrypt.Cost([]byte(strings.TrimSpace(stored)))

	return err == nil
}

// Verify compares plain with a stored hash. Plain text values left in the column by older
// installations never match.
func Verify(plain, stored string) error {
	stored = strings.TrimSpace(stored)

	if plain == "" || !IsHash(stored) {
		return ErrInvalidPassword
	}

	err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(plain))

	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrInvalidPassword
	default:
		return fmt.Errorf("failed to verify password: %w", err)
	}
}
