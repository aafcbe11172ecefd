package models

import (
	"gorm.io/datatypes"
)

// Profile statuses. StatusAll is a filter sentinel only and is never stored.
const (
	StatusAvailable   = "available"
	StatusUnavailable = "unavailable"
	StatusExpired     = "expired"
	StatusAll         = "all"
)

// Profile represents a catalog listing.
type Profile struct {
	BaseModel
	Name     string                      `gorm:"index" json:"name"`
	Age      int                         `gorm:"index" json:"age"`
	Location string                      `gorm:"index" json:"location"`
	Services datatypes.JSONSlice[string] `json:"services"`
	Remark   string                      `json:"remark"`
	Phone    string                      `json:"phone"`
	Status   string                      `gorm:"index" json:"status"`
	DaysLeft int                         `json:"days_left"`
	Image    string                      `json:"image"`
	Shy      bool                        `json:"shy"`
	Verified bool                        `json:"verified"`
	Rating   float64                     `json:"rating"`
}

// ValidStatus reports whether s is a storable profile status.
func ValidStatus(s string) bool {
	switch s {
	case StatusAvailable, StatusUnavailable, StatusExpired:
		return true
	}
	return false
}
