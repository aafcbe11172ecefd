package handlers

import (
	"crypto/subtle"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/example/velora/internal/config"
	"github.com/example/velora/internal/store"
	"github.com/example/velora/internal/utils"
)

// AdminHandler manages admin-only endpoints.
type AdminHandler struct {
	store *store.Store
	cfg   *config.Config
}

// NewAdminHandler constructs AdminHandler.
func NewAdminHandler(st *store.Store, cfg *config.Config) *AdminHandler {
	return &AdminHandler{store: st, cfg: cfg}
}

type adminLoginRequest struct {
	Password string `json:"password"`
}

// Login exchanges the admin password for a role-tagged token.
func (h *AdminHandler) Login(c *fiber.Ctx) error {
	var req adminLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.cfg.AdminPassword)) != 1 {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid admin password")
	}

	token, err := utils.GenerateAdminToken(h.cfg.JWTSecret, h.cfg.TokenExpires)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to generate token")
	}

	return c.JSON(fiber.Map{"success": true, "token": token})
}

// DashboardStats returns aggregate statistics for the admin dashboard.
func (h *AdminHandler) DashboardStats(c *fiber.Ctx) error {
	stats, err := h.store.Statistics()
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": stats})
}

// Export serializes the whole store into a downloadable snapshot.
func (h *AdminHandler) Export(c *fiber.Ctx) error {
	snapshot, err := h.store.ExportSnapshot()
	if err != nil {
		return err
	}

	return c.JSON(snapshot)
}

// Import restores records from an exported snapshot. Every record is
// re-inserted as new; failures are counted, not rolled back.
func (h *AdminHandler) Import(c *fiber.Ctx) error {
	var snapshot store.Snapshot
	if err := c.BodyParser(&snapshot); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	imported, err := h.store.ImportSnapshot(&snapshot)
	if err != nil {
		if errors.Is(err, store.ErrMalformedSnapshot) {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		var partial *store.PartialImportError
		if errors.As(err, &partial) {
			return c.JSON(fiber.Map{
				"success":  false,
				"imported": partial.Succeeded,
				"failed":   partial.Failed,
				"message":  partial.Error(),
			})
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "imported": imported})
}

// Clear empties every collection.
func (h *AdminHandler) Clear(c *fiber.Ctx) error {
	if err := h.store.Clear(); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true})
}

// ListUsers returns registered accounts with pagination, password hashes
// excluded.
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c)

	users, total, err := h.store.PaginateUsers(pg.Page, pg.Limit)
	if err != nil {
		return err
	}

	// Response maps rather than models, so password hashes never serialize.
	data := make([]fiber.Map, len(users))
	for i := range users {
		data[i] = userResponse(&users[i])
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    data,
		"pagination": fiber.Map{
			"current_page":   pg.Page,
			"items_per_page": pg.Limit,
			"total_items":    total,
		},
	})
}
