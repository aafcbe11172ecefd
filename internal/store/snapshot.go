package store

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/example/velora/internal/models"
)

// SchemaVersion tags exported snapshots. Imports reject any other version.
const SchemaVersion = 1

// Snapshot is a portable full copy of the store, identifiers and
// timestamps included.
type Snapshot struct {
	Profiles      []models.Profile `json:"profiles"`
	Users         []models.User    `json:"users"`
	Payments      []models.Payment `json:"payments"`
	ExportedAt    time.Time        `json:"exported_at"`
	SchemaVersion int              `json:"schema_version"`
}

// ExportSnapshot serializes every collection verbatim inside one read
// transaction.
func (s *Store) ExportSnapshot() (*Snapshot, error) {
	snap := &Snapshot{
		ExportedAt:    time.Now(),
		SchemaVersion: SchemaVersion,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Order("created_at asc, id asc").Find(&snap.Profiles).Error; err != nil {
			return err
		}
		if err := tx.Order("created_at asc, id asc").Find(&snap.Users).Error; err != nil {
			return err
		}
		return tx.Order("created_at asc, id asc").Find(&snap.Payments).Error
	})
	if err != nil {
		return nil, err
	}
	return snap, nil
}

// ImportSnapshot re-inserts every record in the snapshot through the
// normal insert path, so each gets a fresh identifier and timestamps and
// the usual constraints apply. Inserts run sequentially; records that fail
// (a duplicate account phone, say) are tallied without rolling back the
// ones already committed. Missing collections are treated as empty.
func (s *Store) ImportSnapshot(snap *Snapshot) (int, error) {
	if snap == nil {
		return 0, fmt.Errorf("%w: empty payload", ErrMalformedSnapshot)
	}
	if snap.SchemaVersion != SchemaVersion {
		return 0, fmt.Errorf("%w: unsupported schema version %d", ErrMalformedSnapshot, snap.SchemaVersion)
	}

	succeeded, failed := 0, 0

	for i := range snap.Profiles {
		profile := snap.Profiles[i]
		if _, err := s.CreateProfile(&profile); err != nil {
			failed++
		} else {
			succeeded++
		}
	}

	for i := range snap.Users {
		user := snap.Users[i]
		if _, err := s.CreateUser(&user); err != nil {
			failed++
		} else {
			succeeded++
		}
	}

	for i := range snap.Payments {
		payment := snap.Payments[i]
		if _, err := s.CreatePayment(&payment); err != nil {
			failed++
		} else {
			succeeded++
		}
	}

	if failed > 0 {
		return succeeded, &PartialImportError{Succeeded: succeeded, Failed: failed}
	}
	return succeeded, nil
}
