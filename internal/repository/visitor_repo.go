package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"hosteldesk/internal/domain"
)

type VisitorFilters struct {
	Status    string
	StudentID string
	// Date narrows to visitors who checked in on this calendar day (YYYY-MM-DD).
	Date string
}

type VisitorStats struct {
	CurrentlyInside int64
	TotalToday      int64
	CheckedOutToday int64
}

type VisitorRepository struct {
	db *gorm.DB
}

func NewVisitorRepository(db *gorm.DB) *VisitorRepository {
	return &VisitorRepository{db: db}
}

func dayBounds(day string) (time.Time, time.Time, error) {
	start, err := time.Parse("2006-01-02", day)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, start.Add(24 * time.Hour), nil
}

func (r *VisitorRepository) List(ctx context.Context, f VisitorFilters) ([]domain.Visitor, error) {
	q := r.db.WithContext(ctx).Model(&domain.Visitor{})

	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.StudentID != "" {
		q = q.Where("student_id = ?", f.StudentID)
	}
	if f.Date != "" {
		from, to, err := dayBounds(f.Date)
		if err != nil {
			return nil, err
		}
		q = q.Where("check_in_time >= ? AND check_in_time < ?", from, to)
	}

	visitors := make([]domain.Visitor, 0)
	err := q.Order("check_in_time DESC").Find(&visitors).Error
	return visitors, err
}

func (r *VisitorRepository) Recent(ctx context.Context, limit int) ([]domain.Visitor, error) {
	visitors := make([]domain.Visitor, 0, limit)
	err := r.db.WithContext(ctx).Order("check_in_time DESC").Limit(limit).Find(&visitors).Error
	return visitors, err
}

func (r *VisitorRepository) GetByID(ctx context.Context, id string) (*domain.Visitor, error) {
	var v domain.Visitor
	if err := r.db.WithContext(ctx).First(&v, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *VisitorRepository) Create(ctx context.Context, v *domain.Visitor) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		id, err := nextID(tx, "visitors", "V", 3)
		if err != nil {
			return err
		}
		v.ID = id
		return tx.Create(v).Error
	})
}

func (r *VisitorRepository) CheckOut(ctx context.Context, id string, at time.Time) (*domain.Visitor, error) {
	res := r.db.WithContext(ctx).Model(&domain.Visitor{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":         domain.VisitorCheckedOut,
		"check_out_time": at,
	})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *VisitorRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&domain.Visitor{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *VisitorRepository) Stats(ctx context.Context, now time.Time) (*VisitorStats, error) {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	var out VisitorStats
	db := r.db.WithContext(ctx)

	if err := db.Model(&domain.Visitor{}).
		Where("status = ?", domain.VisitorCheckedIn).
		Count(&out.CurrentlyInside).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&domain.Visitor{}).
		Where("check_in_time >= ? AND check_in_time < ?", dayStart, dayEnd).
		Count(&out.TotalToday).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&domain.Visitor{}).
		Where("status = ? AND check_in_time >= ? AND check_in_time < ?", domain.VisitorCheckedOut, dayStart, dayEnd).
		Count(&out.CheckedOutToday).Error; err != nil {
		return nil, err
	}

	return &out, nil
}
