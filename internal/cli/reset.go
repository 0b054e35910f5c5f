package cli

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/Superak0s/SuperGym-App-sub001/internal/db"
	"github.com/Superak0s/SuperGym-App-sub001/internal/security"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// RunResetPasswordCommand issues a temporary password for the given
// account and forces a change on next login.
func RunResetPasswordCommand(dbPath string, email string) error {
	normalizedEmail := strings.ToLower(strings.TrimSpace(email))
	if normalizedEmail == "" {
		return errors.New("email is required")
	}
	if _, err := mail.ParseAddress(normalizedEmail); err != nil {
		return fmt.Errorf("invalid email address: %w", err)
	}

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}
	users := db.NewUserRepository(database)

	user, err := users.FindByNormalizedEmail(normalizedEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("user %s not found", normalizedEmail)
		}
		return fmt.Errorf("load user: %w", err)
	}

	temporaryPassword, err := generateTemporaryPassword(12)
	if err != nil {
		return fmt.Errorf("generate temporary password: %w", err)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(temporaryPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash temporary password: %w", err)
	}

	if err := users.UpdatePassword(user.ID, string(passwordHash), true); err != nil {
		return fmt.Errorf("update user password: %w", err)
	}

	fmt.Println("Password reset successful")
	fmt.Printf("Temporary password: %s\n", temporaryPassword)
	fmt.Println("User must change password on next login.")

	return nil
}

func generateTemporaryPassword(length int) (string, error) {
	if length < 8 {
		length = 8
	}

	// Ambiguous characters (0/O, 1/l/I) are excluded on purpose.
	const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"
	return security.RandomString(length, alphabet)
}
