package store

import (
	"gorm.io/gorm"

	"github.com/example/velora/internal/models"
)

// Statistics is an aggregate summary over all three collections.
type Statistics struct {
	TotalProfiles     int64   `json:"total_profiles"`
	AvailableProfiles int64   `json:"available_profiles"`
	TotalUsers        int64   `json:"total_users"`
	TotalPayments     int64   `json:"total_payments"`
	Revenue           float64 `json:"revenue"`
}

// Statistics computes the summary inside one read transaction, so a
// concurrent Clear cannot produce a half-cleared snapshot.
func (s *Store) Statistics() (*Statistics, error) {
	var stats Statistics
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Profile{}).Count(&stats.TotalProfiles).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Profile{}).Where("status = ?", models.StatusAvailable).
			Count(&stats.AvailableProfiles).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.User{}).Count(&stats.TotalUsers).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Payment{}).Count(&stats.TotalPayments).Error; err != nil {
			return err
		}
		return tx.Model(&models.Payment{}).Where("status = ?", models.PaymentCompleted).
			Select("COALESCE(SUM(amount), 0)").Scan(&stats.Revenue).Error
	})
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
