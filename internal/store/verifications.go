package store

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/velora/internal/models"
)

// CreateVerification persists an SMS verification code.
func (s *Store) CreateVerification(v *models.SMSVerification) (uuid.UUID, error) {
	v.BaseModel = models.BaseModel{}
	if err := s.db.Create(v).Error; err != nil {
		return uuid.Nil, translate(err)
	}
	return v.ID, nil
}

// LatestVerification returns the most recent code issued for a phone number.
func (s *Store) LatestVerification(phone string) (*models.SMSVerification, bool, error) {
	var v models.SMSVerification
	err := s.db.Where("phone = ?", phone).Order("created_at desc, id desc").First(&v).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, false, nil
		}
		return nil, false, err
	}
	return &v, true, nil
}

// ConsumeVerification marks a code as used.
func (s *Store) ConsumeVerification(id uuid.UUID) error {
	now := time.Now()
	return translate(s.db.Model(&models.SMSVerification{}).Where("id = ?", id).
		Updates(map[string]interface{}{"verified": true, "used_at": &now}).Error)
}

// VerifyUserPhone flips the verified flag on the account holding the phone.
func (s *Store) VerifyUserPhone(phone string) error {
	return translate(s.db.Model(&models.User{}).Where("phone = ?", phone).
		Update("is_verified", true).Error)
}
