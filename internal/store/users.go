package store

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/velora/internal/models"
)

// CreateUser persists a new account. The unique index on phone rejects
// duplicates at the storage layer, so check-then-insert races cannot
// produce two accounts with the same number.
func (s *Store) CreateUser(user *models.User) (uuid.UUID, error) {
	user.BaseModel = models.BaseModel{}
	if user.JoinDate.IsZero() {
		user.JoinDate = time.Now()
	}
	if err := s.db.Create(user).Error; err != nil {
		return uuid.Nil, translate(err)
	}
	return user.ID, nil
}

// GetUser loads an account by id.
func (s *Store) GetUser(id uuid.UUID) (*models.User, bool, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, false, nil
		}
		return nil, false, err
	}
	return &user, true, nil
}

// GetUserByPhone looks an account up through the phone index.
func (s *Store) GetUserByPhone(phone string) (*models.User, bool, error) {
	var user models.User
	if err := s.db.First(&user, "phone = ?", phone).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, false, nil
		}
		return nil, false, err
	}
	return &user, true, nil
}

// ListUsers returns every account in insertion order.
func (s *Store) ListUsers() ([]models.User, error) {
	var users []models.User
	if err := s.db.Order("created_at asc, id asc").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// PaginateUsers returns the 1-indexed page of accounts in insertion order
// along with the total account count.
func (s *Store) PaginateUsers(page, pageSize int) ([]models.User, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 12
	}

	var total int64
	if err := s.db.Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []models.User
	offset := (page - 1) * pageSize
	if err := s.db.Order("created_at asc, id asc").Limit(pageSize).Offset(offset).Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// UpdateUser merges the partial field map over the stored account inside
// one transaction and re-stamps updated_at.
func (s *Store) UpdateUser(id uuid.UUID, fields map[string]interface{}) (*models.User, error) {
	var updated models.User
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
