package services

import (
	"errors"
	"strings"
	"unicode/utf8"
)

const MaxDisplayNameLength = 64

var ErrSettingsDisplayNameTooLong = errors.New("settings display name too long")

func NormalizeDisplayName(raw string) (string, error) {
	displayName := strings.TrimSpace(raw)
	if utf8.RuneCountInString(displayName) > MaxDisplayNameLength {
		return "", ErrSettingsDisplayNameTooLong
	}
	return displayName, nil
}
