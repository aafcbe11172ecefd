package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/velora/internal/middleware"
	"github.com/example/velora/internal/models"
	"github.com/example/velora/internal/store"
)

// PaymentHandler manages the ledger surface.
type PaymentHandler struct {
	store *store.Store
}

// NewPaymentHandler constructs PaymentHandler.
func NewPaymentHandler(st *store.Store) *PaymentHandler {
	return &PaymentHandler{store: st}
}

type paymentRequest struct {
	Amount float64 `json:"amount"`
	Status string  `json:"status"`
}

// CreatePayment appends a ledger entry for the authenticated user.
func (h *PaymentHandler) CreatePayment(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "authentication required")
	}

	var req paymentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.Amount < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "amount must not be negative")
	}

	status := req.Status
	if status == "" {
		status = models.PaymentPending
	}
	switch status {
	case models.PaymentCompleted, models.PaymentPending, models.PaymentFailed:
	default:
		return fiber.NewError(fiber.StatusBadRequest, "invalid payment status")
	}

	payment := models.Payment{
		UserID: userID,
		Status: status,
		Amount: req.Amount,
	}

	if _, err := h.store.CreatePayment(&payment); err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": payment})
}

// ListPayments returns the authenticated user's ledger entries.
func (h *PaymentHandler) ListPayments(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "authentication required")
	}

	payments, err := h.store.ListUserPayments(userID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": payments, "total": len(payments)})
}
