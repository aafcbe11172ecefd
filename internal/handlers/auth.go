package handlers

import (
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"math/big"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/example/velora/internal/config"
	"github.com/example/velora/internal/models"
	"github.com/example/velora/internal/store"
	"github.com/example/velora/internal/utils"
)

// AuthHandler bundles dependencies for authentication endpoints.
type AuthHandler struct {
	store *store.Store
	cfg   *config.Config
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(st *store.Store, cfg *config.Config) *AuthHandler {
	return &AuthHandler{store: st, cfg: cfg}
}

type registerRequest struct {
	Name            string `json:"name"`
	Phone           string `json:"phone"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
}

// Register creates a new account and issues an SMS verification code.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.Phone == "" || req.Password == "" || req.Name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing required fields")
	}

	if req.PasswordConfirm != "" && req.Password != req.PasswordConfirm {
		return fiber.NewError(fiber.StatusBadRequest, "passwords do not match")
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to hash password")
	}

	user := models.User{
		Name:         req.Name,
		Phone:        req.Phone,
		PasswordHash: passwordHash,
		JoinDate:     time.Now(),
		IsVerified:   false,
	}

	if _, err := h.store.CreateUser(&user); err != nil {
		if errors.Is(err, store.ErrConstraintViolation) {
			return fiber.NewError(fiber.StatusConflict, "an account with this phone number already exists")
		}
		return err
	}

	if err := h.sendVerificationCode(req.Phone); err != nil {
		return err
	}

	token, err := utils.GenerateToken(h.cfg.JWTSecret, user.ID, h.cfg.TokenExpires)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to generate token")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"user":    userResponse(&user),
		"token":   token,
	})
}

type loginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// Login authenticates an existing account.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	user, found, err := h.store.GetUserByPhone(req.Phone)
	if err != nil {
		return err
	}
	if !found || !utils.CheckPassword(user.PasswordHash, req.Password) {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid phone number or password")
	}

	token, err := utils.GenerateToken(h.cfg.JWTSecret, user.ID, h.cfg.TokenExpires)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to generate token")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"user":    userResponse(user),
		"token":   token,
	})
}

type verifyRequest struct {
	Phone string `json:"phone"`
	Code  string `json:"code"`
}

// Verify handles SMS code validation.
func (h *AuthHandler) Verify(c *fiber.Ctx) error {
	var req verifyRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	verification, found, err := h.store.LatestVerification(req.Phone)
	if err != nil {
		return err
	}
	if !found {
		return fiber.NewError(fiber.StatusNotFound, "verification code not found")
	}

	if verification.Code != req.Code {
		return fiber.NewError(fiber.StatusBadRequest, "invalid verification code")
	}

	if verification.ExpiresAt.Before(time.Now()) {
		return fiber.NewError(fiber.StatusBadRequest, "verification code expired")
	}

	if err := h.store.ConsumeVerification(verification.ID); err != nil {
		return err
	}

	if err := h.store.VerifyUserPhone(req.Phone); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"verified": true,
	})
}

type resendRequest struct {
	Phone string `json:"phone"`
}

// Resend issues a fresh verification code for a phone number.
func (h *AuthHandler) Resend(c *fiber.Ctx) error {
	var req resendRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.Phone == "" {
		return fiber.NewError(fiber.StatusBadRequest, "phone is required")
	}

	if _, found, err := h.store.GetUserByPhone(req.Phone); err != nil {
		return err
	} else if !found {
		return fiber.NewError(fiber.StatusNotFound, "no account with this phone number")
	}

	if err := h.sendVerificationCode(req.Phone); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true})
}

type socialRequest struct {
	Provider string `json:"provider"`
	Name     string `json:"name"`
}

// Social simulates a social-provider login: it finds or creates a
// provider-tagged account and issues a session token. No real OAuth.
func (h *AuthHandler) Social(c *fiber.Ctx) error {
	var req socialRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.Provider != "google" && req.Provider != "facebook" {
		return fiber.NewError(fiber.StatusBadRequest, "unsupported provider")
	}

	name := req.Name
	if name == "" {
		name = fmt.Sprintf("%s user", req.Provider)
	}

	user := models.User{
		Name:       name,
		Phone:      fmt.Sprintf("social:%s:%s", req.Provider, uuid.NewString()),
		JoinDate:   time.Now(),
		IsVerified: true,
		Provider:   req.Provider,
	}

	if _, err := h.store.CreateUser(&user); err != nil {
		return err
	}

	token, err := utils.GenerateToken(h.cfg.JWTSecret, user.ID, h.cfg.TokenExpires)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to generate token")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"user":    userResponse(&user),
		"token":   token,
	})
}

func (h *AuthHandler) sendVerificationCode(phone string) error {
	code, err := generateVerificationCode()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to generate verification code")
	}

	verification := models.SMSVerification{
		Phone:     phone,
		Code:      code,
		ExpiresAt: time.Now().Add(10 * time.Minute),
	}

	if _, err := h.store.CreateVerification(&verification); err != nil {
		return err
	}

	// No SMS gateway is wired up; the code lands in the server log.
	log.Printf("SMS to %s: your verification code is %s", phone, code)
	return nil
}

func userResponse(user *models.User) fiber.Map {
	return fiber.Map{
		"id":          user.ID,
		"name":        user.Name,
		"phone":       user.Phone,
		"join_date":   user.JoinDate,
		"is_verified": user.IsVerified,
		"provider":    user.Provider,
	}
}

func generateVerificationCode() (string, error) {
	max := big.NewInt(1000000)
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
