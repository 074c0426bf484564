package repository

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hosteldesk/internal/domain"
)

// nextID allocates the next public ID for an entity inside the caller's
// transaction. The sequence row is bumped under the row lock, so concurrent
// creates cannot collide on the same ID.
func nextID(tx *gorm.DB, name, prefix string, pad int) (string, error) {
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&domain.Sequence{Name: name, Value: 0}).Error; err != nil {
		return "", err
	}

	if err := tx.Model(&domain.Sequence{}).
		Where("name = ?", name).
		Update("value", gorm.Expr("value + 1")).Error; err != nil {
		return "", err
	}

	var seq domain.Sequence
	if err := tx.First(&seq, "name = ?", name).Error; err != nil {
		return "", err
	}

	if pad > 0 {
		return fmt.Sprintf("%s%0*d", prefix, pad, seq.Value), nil
	}
	return fmt.Sprintf("%s%d", prefix, seq.Value), nil
}

// AdvanceSequence moves an entity's sequence to at least value. The seeder
// uses it after inserting rows with explicit IDs.
func AdvanceSequence(db *gorm.DB, name string, value int64) error {
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&domain.Sequence{Name: name, Value: 0}).Error; err != nil {
		return err
	}
	return db.Model(&domain.Sequence{}).
		Where("name = ? AND value < ?", name, value).
		Update("value", value).Error
}
