package services

import (
	"errors"
	"strings"
)

var ErrSettingsNewPasswordMustDiffer = errors.New("settings new password must differ")

// ValidatePasswordChange checks the current password first.
func (service *SettingsService) ValidatePasswordChange(passwordHash string, currentPassword string, newPassword string) error {
	if err := service.ValidateCurrentPassword(passwordHash, currentPassword); err != nil {
		return err
	}
	if strings.TrimSpace(currentPassword) == strings.TrimSpace(newPassword) {
		return ErrSettingsNewPasswordMustDiffer
	}
	return ValidatePasswordStrength(newPassword)
}
