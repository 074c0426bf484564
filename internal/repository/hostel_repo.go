package repository

import (
	"context"

	"gorm.io/gorm"

	"hosteldesk/internal/domain"
)

type HostelFilters struct {
	Type string
}

type HostelStats struct {
	TotalHostels  int64
	TotalRooms    int64
	TotalOccupied int64
	MaleHostels   int64
	FemaleHostels int64
	MixedHostels  int64
}

type HostelRepository struct {
	db *gorm.DB
}

func NewHostelRepository(db *gorm.DB) *HostelRepository {
	return &HostelRepository{db: db}
}

func (r *HostelRepository) List(ctx context.Context, f HostelFilters) ([]domain.Hostel, error) {
	q := r.db.WithContext(ctx).Model(&domain.Hostel{})
	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}

	hostels := make([]domain.Hostel, 0)
	err := q.Find(&hostels).Error
	return hostels, err
}

func (r *HostelRepository) GetByID(ctx context.Context, id string) (*domain.Hostel, error) {
	var h domain.Hostel
	if err := r.db.WithContext(ctx).First(&h, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *HostelRepository) Create(ctx context.Context, h *domain.Hostel) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Hostel IDs are unpadded: H1, H2, ...
		id, err := nextID(tx, "hostels", "H", 0)
		if err != nil {
			return err
		}
		h.ID = id
		return tx.Create(h).Error
	})
}

func (r *HostelRepository) Update(ctx context.Context, id string, cols map[string]interface{}) (*domain.Hostel, error) {
	res := r.db.WithContext(ctx).Model(&domain.Hostel{}).Where("id = ?", id).Updates(cols)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *HostelRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&domain.Hostel{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *HostelRepository) Stats(ctx context.Context) (*HostelStats, error) {
	var out HostelStats
	db := r.db.WithContext(ctx).Model(&domain.Hostel{})

	type totals struct {
		Count    int64
		Rooms    int64
		Occupied int64
	}
	var t totals
	if err := db.Select("COUNT(*) AS count, COALESCE(SUM(total_rooms),0) AS rooms, COALESCE(SUM(occupied_rooms),0) AS occupied").
		Scan(&t).Error; err != nil {
		return nil, err
	}
	out.TotalHostels = t.Count
	out.TotalRooms = t.Rooms
	out.TotalOccupied = t.Occupied

	type typeCount struct {
		Type  string
		Count int64
	}
	var byType []typeCount
	if err := r.db.WithContext(ctx).Model(&domain.Hostel{}).
		Select("type, COUNT(*) AS count").Group("type").Scan(&byType).Error; err != nil {
		return nil, err
	}
	for _, tc := range byType {
		switch domain.HostelType(tc.Type) {
		case domain.HostelMale:
			out.MaleHostels = tc.Count
		case domain.HostelFemale:
			out.FemaleHostels = tc.Count
		case domain.HostelMixed:
			out.MixedHostels = tc.Count
		}
	}

	return &out, nil
}
