package cli

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/Superak0s/SuperGym-App-sub001/internal/db"
	"github.com/Superak0s/SuperGym-App-sub001/internal/models"
	"golang.org/x/crypto/bcrypt"
)

func TestGenerateTemporaryPasswordMinimumLength(t *testing.T) {
	t.Parallel()

	password, err := generateTemporaryPassword(4)
	if err != nil {
		t.Fatalf("generateTemporaryPassword returned error: %v", err)
	}
	if len(password) != 8 {
		t.Fatalf("generateTemporaryPassword minimum len = %d, want 8", len(password))
	}
}

func TestGenerateTemporaryPasswordAlphabet(t *testing.T) {
	t.Parallel()

	const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"
	password, err := generateTemporaryPassword(24)
	if err != nil {
		t.Fatalf("generateTemporaryPassword returned error: %v", err)
	}
	if len(password) != 24 {
		t.Fatalf("generateTemporaryPassword len = %d, want 24", len(password))
	}

	for _, char := range password {
		if !strings.ContainsRune(alphabet, char) {
			t.Fatalf("password %q contains char %q outside alphabet", password, char)
		}
	}
}

func TestRunResetPasswordCommandValidation(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "reset-validation.db")

	if err := RunResetPasswordCommand(dbPath, "   "); err == nil {
		t.Fatal("expected error for an empty email")
	}
	if err := RunResetPasswordCommand(dbPath, "not-an-email"); err == nil {
		t.Fatal("expected error for a malformed email")
	}
	if err := RunResetPasswordCommand(dbPath, "missing@example.com"); err == nil {
		t.Fatal("expected error for an unknown user")
	}
}

func TestRunResetPasswordCommandResetsUser(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "reset-success.db")
	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	originalHash, err := bcrypt.GenerateFromPassword([]byte("OriginalPass1"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := models.User{Email: "lifter@example.com", PasswordHash: string(originalHash)}
	if err := database.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	if err := sqlDB.Close(); err != nil {
		t.Fatalf("close seed connection: %v", err)
	}

	if err := RunResetPasswordCommand(dbPath, "Lifter@Example.com"); err != nil {
		t.Fatalf("reset failed: %v", err)
	}

	verifyDB, err := db.OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("reopen sqlite: %v", err)
	}
	var updated models.User
	if err := verifyDB.First(&updated, user.ID).Error; err != nil {
		t.Fatalf("load user: %v", err)
	}
	if !updated.MustChangePassword {
		t.Fatal("expected must-change-password flag set")
	}
	if updated.PasswordHash == string(originalHash) {
		t.Fatal("expected the password hash replaced")
	}
}
