package models

import (
	"time"
)

// User represents a registered account. Phone numbers are unique across
// all accounts; the index enforces that at the storage layer.
type User struct {
	BaseModel
	Name         string    `gorm:"index" json:"name"`
	Phone        string    `gorm:"uniqueIndex" json:"phone"`
	PasswordHash string    `json:"password_hash,omitempty"`
	JoinDate     time.Time `json:"join_date"`
	IsVerified   bool      `json:"is_verified"`
	Provider     string    `json:"provider,omitempty"`
}

// SMSVerification keeps track of OTP codes sent to users.
type SMSVerification struct {
	BaseModel
	Phone     string     `gorm:"index" json:"phone"`
	Code      string     `json:"code"`
	ExpiresAt time.Time  `json:"expires_at"`
	Verified  bool       `json:"verified"`
	UsedAt    *time.Time `json:"used_at"`
}
