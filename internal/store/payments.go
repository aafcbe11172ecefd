package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/example/velora/internal/models"
)

// CreatePayment appends a ledger entry. The entry date defaults to now
// when the caller leaves it unset.
func (s *Store) CreatePayment(payment *models.Payment) (uuid.UUID, error) {
	payment.BaseModel = models.BaseModel{}
	if payment.Date.IsZero() {
		payment.Date = time.Now()
	}
	if err := s.db.Create(payment).Error; err != nil {
		return uuid.Nil, translate(err)
	}
	return payment.ID, nil
}

// ListPayments returns the whole ledger in insertion order.
func (s *Store) ListPayments() ([]models.Payment, error) {
	var payments []models.Payment
	if err := s.db.Order("created_at asc, id asc").Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// ListUserPayments returns one user's ledger entries through the user index.
func (s *Store) ListUserPayments(userID uuid.UUID) ([]models.Payment, error) {
	var payments []models.Payment
	if err := s.db.Where("user_id = ?", userID).Order("created_at asc, id asc").Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}
