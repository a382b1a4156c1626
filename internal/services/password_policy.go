package services

import (
	"errors"
	"fmt"
	"unicode"
	"unicode/utf8"
)

const (
	MinPasswordLength = 8
	// bcrypt ignores input past 72 bytes.
	MaxPasswordBytes = 72
)

var ErrWeakPassword = errors.New("weak password")

// ValidatePasswordStrength wraps ErrWeakPassword with the first missing rule.
func ValidatePasswordStrength(password string) error {
	switch {
	case utf8.RuneCountInString(password) < MinPasswordLength:
		return fmt.Errorf("%w: use at least %d characters", ErrWeakPassword, MinPasswordLength)
	case len(password) > MaxPasswordBytes:
		return fmt.Errorf("%w: use at most %d bytes", ErrWeakPassword, MaxPasswordBytes)
	}

	missing := map[string]bool{"an upper-case letter": true, "a lower-case letter": true, "a digit": true}
	for _, char := range password {
		switch {
		case unicode.IsUpper(char):
			delete(missing, "an upper-case letter")
		case unicode.IsLower(char):
			delete(missing, "a lower-case letter")
		case unicode.IsDigit(char):
			delete(missing, "a digit")
		}
	}
	for _, rule := range []string{"an upper-case letter", "a lower-case letter", "a digit"} {
		if missing[rule] {
			return fmt.Errorf("%w: add %s", ErrWeakPassword, rule)
		}
	}
	return nil
}
