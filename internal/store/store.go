package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/example/velora/internal/database"
	"github.com/example/velora/internal/models"
)

// Failure taxonomy shared by every layer of the store. Layers above the
// record store add no translation of their own.
var (
	// ErrUnavailable means the backing database could not be opened or
	// accessed. Fatal to the session.
	ErrUnavailable = errors.New("store unavailable")

	// ErrConstraintViolation means a uniqueness or validation constraint
	// rejected a write.
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrNotFound means an operation referenced a record that does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrMalformedSnapshot means an import payload failed structural
	// validation before any insert was attempted.
	ErrMalformedSnapshot = errors.New("malformed snapshot")
)

// PartialImportError reports an import where some records failed to insert.
// Records inserted before a failure are not rolled back.
type PartialImportError struct {
	Succeeded int
	Failed    int
}

func (e *PartialImportError) Error() string {
	return fmt.Sprintf("partial import: %d records imported, %d failed", e.Succeeded, e.Failed)
}

// Store owns the persistent collections and is the only component that
// touches the database directly. It holds no state beyond the handle.
type Store struct {
	db *gorm.DB
}

// Open establishes the persistent store, creating collections and indexes
// as needed.
func Open(dsn string) (*Store, error) {
	db, err := database.Connect(dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return New(db), nil
}

// New wraps an already-connected database handle.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Clear empties every collection in a single transaction, so no reader
// observes a partially-cleared state.
func (s *Store) Clear() error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		session := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		for _, model := range []interface{}{
			&models.Profile{},
			&models.User{},
			&models.SMSVerification{},
			&models.Payment{},
		} {
			if err := session.Delete(model).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// translate maps gorm's errors onto the store taxonomy. Anything it does
// not recognize passes through unchanged.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", ErrConstraintViolation, err)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	default:
		return err
	}
}
