package models

import (
	"time"

	"github.com/google/uuid"
)

// Payment statuses. Revenue aggregation only counts completed entries.
const (
	PaymentCompleted = "completed"
	PaymentPending   = "pending"
	PaymentFailed    = "failed"
)

// Payment is an opaque ledger row tied to the user that made it.
// The user reference is caller-supplied and not enforced by a constraint.
type Payment struct {
	BaseModel
	UserID uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	Status string    `gorm:"index" json:"status"`
	Amount float64   `json:"amount"`
	Date   time.Time `gorm:"index" json:"date"`
}
