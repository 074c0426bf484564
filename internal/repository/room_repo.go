package repository

import (
	"context"

	"gorm.io/gorm"

	"hosteldesk/internal/domain"
)

type RoomFilters struct {
	Status   string
	Type     string
	HostelID string
	// Available narrows to rooms that can still take a student:
	// status available and occupancy below capacity.
	Available bool
}

type RoomStats struct {
	TotalRooms       int64
	AvailableRooms   int64
	OccupiedRooms    int64
	MaintenanceRooms int64
	AverageFee       float64
}

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

func (r *RoomRepository) List(ctx context.Context, f RoomFilters) ([]domain.Room, error) {
	q := r.db.WithContext(ctx).Model(&domain.Room{})

	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}
	if f.HostelID != "" {
		q = q.Where("hostel_id = ?", f.HostelID)
	}
	if f.Available {
		q = q.Where("status = ? AND occupancy < capacity", domain.RoomAvailable)
	}

	rooms := make([]domain.Room, 0)
	err := q.Find(&rooms).Error
	return rooms, err
}

func (r *RoomRepository) GetByID(ctx context.Context, id string) (*domain.Room, error) {
	var room domain.Room
	if err := r.db.WithContext(ctx).First(&room, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		id, err := nextID(tx, "rooms", "R", 3)
		if err != nil {
			return err
		}
		room.ID = id
		return tx.Create(room).Error
	})
}

func (r *RoomRepository) Update(ctx context.Context, id string, cols map[string]interface{}) (*domain.Room, error) {
	res := r.db.WithContext(ctx).Model(&domain.Room{}).Where("id = ?", id).Updates(cols)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *RoomRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&domain.Room{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *RoomRepository) Stats(ctx context.Context) (*RoomStats, error) {
	var out RoomStats

	type row struct {
		Total       int64
		Available   int64
		Occupied    int64
		Maintenance int64
		AvgFee      float64
	}
	var v row
	err := r.db.WithContext(ctx).Model(&domain.Room{}).
		Select(`COUNT(*) AS total,
COALESCE(SUM(CASE WHEN status = 'available' THEN 1 ELSE 0 END),0) AS available,
COALESCE(SUM(CASE WHEN status = 'occupied' THEN 1 ELSE 0 END),0) AS occupied,
COALESCE(SUM(CASE WHEN status = 'maintenance' THEN 1 ELSE 0 END),0) AS maintenance,
COALESCE(AVG(monthly_fee),0) AS avg_fee`).
		Scan(&v).Error
	if err != nil {
		return nil, err
	}

	out.TotalRooms = v.Total
	out.AvailableRooms = v.Available
	out.OccupiedRooms = v.Occupied
	out.MaintenanceRooms = v.Maintenance
	out.AverageFee = v.AvgFee
	return &out, nil
}
