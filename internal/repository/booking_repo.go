package repository

import (
	"context"

	"gorm.io/gorm"

	"hosteldesk/internal/domain"
)

// farFuture stands in for a missing end date: an open-ended booking blocks
// the room indefinitely.
const farFuture = "9999-12-31"

type BookingFilters struct {
	Status    string
	StudentID string
	RoomID    string
}

type BookingStats struct {
	TotalBookings     int64
	ConfirmedBookings int64
	PendingBookings   int64
	CancelledBookings int64
	TotalRevenue      float64
}

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) List(ctx context.Context, f BookingFilters) ([]domain.Booking, error) {
	q := r.db.WithContext(ctx).Model(&domain.Booking{})

	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.StudentID != "" {
		q = q.Where("student_id = ?", f.StudentID)
	}
	if f.RoomID != "" {
		q = q.Where("room_id = ?", f.RoomID)
	}

	bookings := make([]domain.Booking, 0)
	err := q.Order("booking_date DESC").Find(&bookings).Error
	return bookings, err
}

func (r *BookingRepository) Recent(ctx context.Context, limit int) ([]domain.Booking, error) {
	bookings := make([]domain.Booking, 0, limit)
	err := r.db.WithContext(ctx).Order("booking_date DESC").Limit(limit).Find(&bookings).Error
	return bookings, err
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	var b domain.Booking
	if err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

// HasOverlap reports whether the room already has a non-cancelled booking
// whose half-open [start_date, end_date) range intersects the requested one.
// Missing end dates are open-ended on both sides of the comparison.
func (r *BookingRepository) HasOverlap(ctx context.Context, roomID, startDate string, endDate *string) (bool, error) {
	end := farFuture
	if endDate != nil && *endDate != "" {
		end = *endDate
	}

	var cnt int64
	err := r.db.WithContext(ctx).Model(&domain.Booking{}).
		Where("room_id = ? AND status <> ?", roomID, domain.BookingCancelled).
		Where("start_date < ? AND COALESCE(end_date, ?) > ?", end, farFuture, startDate).
		Count(&cnt).Error
	if err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		id, err := nextID(tx, "bookings", "B", 3)
		if err != nil {
			return err
		}
		b.ID = id
		return tx.Create(b).Error
	})
}

func (r *BookingRepository) Update(ctx context.Context, id string, cols map[string]interface{}) (*domain.Booking, error) {
	res := r.db.WithContext(ctx).Model(&domain.Booking{}).Where("id = ?", id).Updates(cols)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	return r.Update(ctx, id, map[string]interface{}{"status": status})
}

func (r *BookingRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&domain.Booking{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *BookingRepository) Stats(ctx context.Context) (*BookingStats, error) {
	type row struct {
		Total     int64
		Confirmed int64
		Pending   int64
		Cancelled int64
		Revenue   float64
	}
	var v row
	err := r.db.WithContext(ctx).Model(&domain.Booking{}).
		Select(`COUNT(*) AS total,
COALESCE(SUM(CASE WHEN status = 'confirmed' THEN 1 ELSE 0 END),0) AS confirmed,
COALESCE(SUM(CASE WHEN status = 'pending' THEN 1 ELSE 0 END),0) AS pending,
COALESCE(SUM(CASE WHEN status = 'cancelled' THEN 1 ELSE 0 END),0) AS cancelled,
COALESCE(SUM(CASE WHEN status = 'confirmed' THEN amount ELSE 0 END),0) AS revenue`).
		Scan(&v).Error
	if err != nil {
		return nil, err
	}

	return &BookingStats{
		TotalBookings:     v.Total,
		ConfirmedBookings: v.Confirmed,
		PendingBookings:   v.Pending,
		CancelledBookings: v.Cancelled,
		TotalRevenue:      v.Revenue,
	}, nil
}
