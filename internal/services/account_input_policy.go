package services

import (
	"errors"
	"net/mail"
	"strings"
)

// MaxEmailLength is the longest address a mailbox can have.
const MaxEmailLength = 254

var ErrAuthCredentialsInvalid = errors.New("auth credentials invalid")

// NormalizeAccountEmail lower-cases a bare mailbox address. Display-name forms
// such as "Sam <sam@example.com>" normalize to "".
func NormalizeAccountEmail(raw string) string {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" || len(email) > MaxEmailLength {
		return ""
	}
	parsed, err := mail.ParseAddress(email)
	if err != nil || parsed.Address != email {
		return ""
	}
	return email
}

// NormalizeCredentialsInput is shared by registration and login. Only the
// whitespace around the password is dropped.
func NormalizeCredentialsInput(emailRaw string, passwordRaw string) (string, string, error) {
	email := NormalizeAccountEmail(emailRaw)
	if email == "" {
		return "", "", ErrAuthCredentialsInvalid
	}
	password := strings.TrimSpace(passwordRaw)
	if password == "" {
		return "", "", ErrAuthCredentialsInvalid
	}
	return email, password, nil
}
