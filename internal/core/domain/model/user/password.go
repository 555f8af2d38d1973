package user

import (
	"errors"
	"fmt"
	"slices"
	"unicode/utf8"

	"ecommerce/internal/pkg/errs"
	"ecommerce/internal/pkg/guard"

	"golang.org/x/crypto/bcrypt"
)

const (
	MinPasswordLength = 6
	// bcrypt ignores input past 72 bytes.
	maxPasswordBytes = 72
)

var ErrPasswordIsNotConstructed = errors.New("password must be created via NewPassword or RestorePassword")

// Password is a bcrypt hash of an account secret.
type Password struct {
	hash  []byte
	guard guard.ConstructorGuard
}

// NewPassword validates the plain secret and hashes it.
func NewPassword(plain string) (Password, error) {
	if n := utf8.RuneCountInString(plain); n < MinPasswordLength {
		return Password{}, errs.NewValueIsInvalidErrorWithCause(
			"password",
			fmt.Errorf("must have at least %d characters, got %d", MinPasswordLength, n),
		)
	}
	if len(plain) > maxPasswordBytes {
		return Password{}, errs.NewValueIsOutOfRangeError("password length", len(plain), MinPasswordLength, maxPasswordBytes)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return Password{}, fmt.Errorf("hash password: %w", err)
	}

	return Password{hash: hash, guard: guard.NewConstructorGuard()}, nil
}

// RestorePassword wraps a hash produced by NewPassword.
func RestorePassword(hash []byte) (Password, error) {
	if _, err := bcrypt.Cost(hash); err != nil {
		return Password{}, errs.NewValueIsInvalidErrorWithCause("password hash", err)
	}
	return Password{hash: slices.Clone(hash), guard: guard.NewConstructorGuard()}, nil
}

func (p Password) Validate() error {
	return p.guard.Validate(ErrPasswordIsNotConstructed)
}

// Matches reports whether plain is the secret behind the hash.
func (p Password) Matches(plain string) bool {
	if len(p.hash) == 0 {
		return false
	}
	return bcrypt.CompareHashAndPassword(p.hash, []byte(plain)) == nil
}

// Hash returns a copy of the stored hash.
func (p Password) Hash() []byte {
	return slices.Clone(p.hash)
}
