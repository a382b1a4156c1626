package cli

import (
	"fmt"
	"io"

	"github.com/terraincognita07/mindguard/internal/db"
	"github.com/terraincognita07/mindguard/internal/models"
	"gorm.io/gorm"
)

// PromoteCounselor grants the counselor role and drops the user's own counselor link.
func PromoteCounselor(database *gorm.DB, email string, out io.Writer) error {
	users := db.NewUserRepository(database)
	user, err := findUserForCommand(users, email)
	if err != nil {
		return err
	}
	if user.IsCounselor() {
		fmt.Fprintf(out, "%s is already a counselor\n", user.Email)
		return nil
	}

	if err := users.UpdateByID(user.ID, map[string]any{"role": models.RoleCounselor, "counselor_id": nil}); err != nil {
		return fmt.Errorf("update user role: %w", err)
	}
	fmt.Fprintf(out, "%s is now a counselor\n", user.Email)
	return nil
}
