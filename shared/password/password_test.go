package password_test

import (
	"errors"
	"strings"
	"testing"

	"hotel/shared/password"

	"golang.org/x/crypto/bcrypt"
)

func TestConstants(t *testing.T) {
	if password.DefaultCost != bcrypt.DefaultCost {
		t.Errorf("expected DefaultCost to be %d, got %d", bcrypt.DefaultCost, password.DefaultCost)
	}
}

func TestHash(t *testing.T) {
	tests := []struct {
		name          string
		password      string
		expectedError error
	}{
		{name: "valid password", password: "secret123"},
		{name: "short password", password: "abc"},
		{name: "empty password", password: "", expectedError: password.ErrEmptyPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := password.Hash(tt.password)

			if tt.expectedError != nil {
				if !errors.Is(err, tt.expectedError) {
					t.Fatalf("expected error %v, got %v", tt.expectedError, err)
				}

				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if hash == tt.password {
				t.Error("hash must not equal the plain text password")
			}

			if !strings.HasPrefix(hash, "$2a$") {
				t.Errorf("expected bcrypt hash, got %s", hash)
			}
		})
	}
}

func TestHashIsSalted(t *testing.T) {
	first, err := password.Hash("secret123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second, err := password.Hash("secret123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first == second {
		t.Error("expected two hashes of the same password to differ")
	}
}

func TestVerify(t *testing.T) {
	hash, err := password.Hash("secret123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name          string
		password      string
		hash          string
		expectedError error
	}{
		{name: "matching password", password: "secret123", hash: hash},
		{name: "wrong password", password: "secret124", hash: hash, expectedError: password.ErrInvalidPassword},
		{name: "empty password", password: "", hash: hash, expectedError: password.ErrInvalidPassword},
		{name: "empty hash", password: "secret123", hash: "", expectedError: password.ErrInvalidPassword},
		{name: "legacy plain text column", password: "secret123", hash: "secret123", expectedError: password.ErrInvalidPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := password.Verify(tt.password, tt.hash)

			if tt.expectedError == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if tt.expectedError != nil && !errors.Is(err, tt.expectedError) {
				t.Fatalf("expected error %v, got %v", tt.expectedError, err)
			}
		})
	}
}

func TestVerifyPaddedColumn(t *testing.T) {
	hash, err := password.Hash("secret123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := password.Verify("secret123", hash+"     "); err != nil {
		t.Fatalf("expected a space padded hash to match, got %v", err)
	}
}

func TestIsHash(t *testing.T) {
	hash, err := password.Hash("secret123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !password.IsHash(hash) {
		t.Error("expected a bcrypt hash to be recognised")
	}

	if password.IsHash("secret123") {
		t.Error("expected plain text not to be recognised as a hash")
	}
}
