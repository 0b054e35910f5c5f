package api

import (
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/Superak0s/SuperGym-App-sub001/internal/models"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const minPasswordLength = 8

func (handler *Handler) Register(c *fiber.Ctx) error {
	input := credentialsInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	email := normalizeEmail(input.Email)
	if email == "" {
		return apiError(c, fiber.StatusBadRequest, "invalid email")
	}
	if len(input.Password) < minPasswordLength {
		return apiError(c, fiber.StatusBadRequest, "password too short")
	}

	exists, err := handler.repos.Users.ExistsByNormalizedEmail(email)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "registration failed")
	}
	if exists {
		return apiError(c, fiber.StatusConflict, "email already registered")
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "registration failed")
	}

	user := models.User{
		Email:        email,
		PasswordHash: string(passwordHash),
		DisplayName:  strings.TrimSpace(input.DisplayName),
		CreatedAt:    time.Now(),
	}
	if err := handler.repos.Users.Create(&user); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "registration failed")
	}

	token, err := handler.setAuthCookie(c, &user, input.RememberMe)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "registration failed")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":    user.ID,
		"email": user.Email,
		"token": token,
	})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	input := credentialsInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	email := normalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return apiError(c, fiber.StatusBadRequest, "email and password are required")
	}

	user, err := handler.repos.Users.FindByNormalizedEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
		}
		return apiError(c, fiber.StatusInternalServerError, "login failed")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	}

	token, err := handler.setAuthCookie(c, &user, input.RememberMe)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "login failed")
	}

	return c.JSON(fiber.Map{
		"id":                   user.ID,
		"email":                user.Email,
		"display_name":         user.DisplayName,
		"must_change_password": user.MustChangePassword,
		"token":                token,
	})
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"ok": true})
}

func normalizeEmail(raw string) string {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return ""
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return ""
	}
	return email
}
