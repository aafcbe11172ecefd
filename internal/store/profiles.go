package store

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/velora/internal/models"
)

// CreateProfile persists a new profile. The store assigns the identifier
// and both timestamps; any caller-supplied values for them are discarded.
func (s *Store) CreateProfile(profile *models.Profile) (uuid.UUID, error) {
	profile.BaseModel = models.BaseModel{}
	if err := s.db.Create(profile).Error; err != nil {
		return uuid.Nil, translate(err)
	}
	return profile.ID, nil
}

// GetProfile loads a profile by id. Absence is a normal outcome, reported
// through the bool rather than an error.
func (s *Store) GetProfile(id uuid.UUID) (*models.Profile, bool, error) {
	var profile models.Profile
	if err := s.db.First(&profile, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, false, nil
		}
		return nil, false, err
	}
	return &profile, true, nil
}

// ListProfiles returns every profile in insertion order.
func (s *Store) ListProfiles() ([]models.Profile, error) {
	var profiles []models.Profile
	if err := s.db.Order("created_at asc, id asc").Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

// UpdateProfile merges the partial field map over the stored record and
// re-stamps updated_at. The read and write share one transaction so an
// interleaved external write cannot slip between them.
func (s *Store) UpdateProfile(id uuid.UUID, fields map[string]interface{}) (*models.Profile, error) {
	var updated models.Profile
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&updated, "id = ?", id).Error; err != nil {
			return err
		}
		return tx.Model(&updated).Updates(fields).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return &updated, nil
}

// DeleteProfile removes a profile. Deleting an id that is already absent
// is a silent success, matching the delete semantics of the rest of the
// catalog surface.
func (s *Store) DeleteProfile(id uuid.UUID) error {
	return s.db.Delete(&models.Profile{}, "id = ?", id).Error
}

// CountProfiles returns the number of stored profiles.
func (s *Store) CountProfiles() (int64, error) {
	var total int64
	if err := s.db.Model(&models.Profile{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
