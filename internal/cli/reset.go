package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/terraincognita07/mindguard/internal/db"
	"github.com/terraincognita07/mindguard/internal/models"
	"github.com/terraincognita07/mindguard/internal/security"
	"github.com/terraincognita07/mindguard/internal/services"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const temporaryPasswordLength = 12

// ResetPassword replaces the user's password. An empty newPassword generates a
// temporary one that must be changed on next login; the password in effect is returned.
func ResetPassword(database *gorm.DB, email string, newPassword string, out io.Writer) (string, error) {
	users := db.NewUserRepository(database)
	user, err := findUserForCommand(users, email)
	if err != nil {
		return "", err
	}

	mustChange := newPassword == ""
	password := newPassword
	if mustChange {
		password, err = generateTemporaryPassword(temporaryPasswordLength)
		if err != nil {
			return "", fmt.Errorf("generate temporary password: %w", err)
		}
	} else if err := services.ValidatePasswordStrength(password); err != nil {
		return "", fmt.Errorf("new password rejected: %w", err)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	if err := users.UpdatePassword(user.ID, string(passwordHash), mustChange); err != nil {
		return "", fmt.Errorf("update user password: %w", err)
	}

	fmt.Fprintf(out, "Password reset for %s\n", user.Email)
	if mustChange {
		fmt.Fprintf(out, "Temporary password: %s\n", password)
		fmt.Fprintln(out, "User must change password on next login.")
	}
	return password, nil
}

func findUserForCommand(users *db.UserRepository, rawEmail string) (models.User, error) {
	email := services.NormalizeAccountEmail(rawEmail)
	if email == "" {
		return models.User{}, errors.New("a valid email is required")
	}

	user, err := users.FindByNormalizedEmail(email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, fmt.Errorf("user %s not found", email)
	}
	if err != nil {
		return models.User{}, fmt.Errorf("load user: %w", err)
	}
	return user, nil
}

func generateTemporaryPassword(length int) (string, error) {
	if length < services.MinPasswordLength {
		length = services.MinPasswordLength
	}

	const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"
	for {
		candidate, err := security.RandomString(length, alphabet)
		if err != nil {
			return "", err
		}
		// Temporary passwords go through the same policy as chosen ones.
		if services.ValidatePasswordStrength(candidate) == nil {
			return candidate, nil
		}
	}
}
