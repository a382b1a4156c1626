package services

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrSettingsPasswordMissing = errors.New("settings password missing")
	ErrSettingsPasswordInvalid = errors.New("settings password invalid")
	ErrAccountDeleteFailed     = errors.New("delete account failed")
	ErrPasswordUpdateFailed    = errors.New("update password failed")
)

type SettingsUserRepository interface {
	UpdateByID(userID uint, updates map[string]any) error
	UpdatePassword(userID uint, passwordHash string, mustChangePassword bool) error
	DeleteAccountAndRelatedData(userID uint) error
}

type AccountEntryRemover interface {
	DeleteAllForUser(userID uint) error
}

type SettingsService struct {
	users   SettingsUserRepository
	entries AccountEntryRemover
}

func NewSettingsService(users SettingsUserRepository, entries AccountEntryRemover) *SettingsService {
	return &SettingsService{users: users, entries: entries}
}

func (service *SettingsService) ValidateCurrentPassword(passwordHash string, rawPassword string) error {
	password := strings.TrimSpace(rawPassword)
	if password == "" {
		return ErrSettingsPasswordMissing
	}
	if bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password)) != nil {
		return ErrSettingsPasswordInvalid
	}
	return nil
}

func (service *SettingsService) UpdateDisplayName(userID uint, raw string) (string, error) {
	displayName, err := NormalizeDisplayName(raw)
	if err != nil {
		return "", err
	}
	return displayName, service.users.UpdateByID(userID, map[string]any{"display_name": displayName})
}

func (service *SettingsService) ChangePassword(userID uint, passwordHash string, currentPassword string, newPassword string) error {
	if err := service.ValidatePasswordChange(passwordHash, currentPassword, newPassword); err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return ErrPasswordUpdateFailed
	}
	if err := service.users.UpdatePassword(userID, string(hash), false); err != nil {
		return ErrPasswordUpdateFailed
	}
	return nil
}

// DeleteAccount removes entries from the configured entry store first, then
// the user together with everything kept alongside it in SQLite.
func (service *SettingsService) DeleteAccount(userID uint, passwordHash string, rawPassword string) error {
	if err := service.ValidateCurrentPassword(passwordHash, rawPassword); err != nil {
		return err
	}
	if err := service.entries.DeleteAllForUser(userID); err != nil {
		return ErrAccountDeleteFailed
	}
	if err := service.users.DeleteAccountAndRelatedData(userID); err != nil {
		return ErrAccountDeleteFailed
	}
	return nil
}
