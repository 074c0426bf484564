package room

import (
	"context"
	"math"

	"hosteldesk/internal/domain"
	"hosteldesk/internal/pkg/dberrors"
	"hosteldesk/internal/pkg/validator"
	"hosteldesk/internal/repository"
)

type Service struct {
	rooms RoomRepository
}

func NewService(rooms RoomRepository) *Service {
	return &Service{rooms: rooms}
}

func (s *Service) List(ctx context.Context, f repository.RoomFilters) ([]domain.Room, error) {
	return s.rooms.List(ctx, f)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Room, error) {
	r, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		if dberrors.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return r, nil
}

func (s *Service) Create(ctx context.Context, req CreateRoomRequest) (*domain.Room, error) {
	if errs := validator.Validate(req); errs != nil {
		return nil, ErrValidation
	}

	r := &domain.Room{
		Number:     req.Number,
		HostelID:   req.HostelID,
		Capacity:   req.Capacity,
		Occupancy:  0,
		Type:       domain.RoomType(req.Type),
		MonthlyFee: req.MonthlyFee,
		Status:     domain.RoomAvailable,
		Amenities:  domain.StringList(req.Amenities),
		Floor:      req.Floor,
	}
	if r.Amenities == nil {
		r.Amenities = domain.StringList{}
	}

	if err := s.rooms.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpdateRoomRequest) (*domain.Room, error) {
	if errs := validator.Validate(req); errs != nil {
		return nil, ErrValidation
	}

	cols := req.columns()
	if len(cols) == 0 {
		return nil, ErrNoFields
	}

	r, err := s.rooms.Update(ctx, id, cols)
	if err != nil {
		if dberrors.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return r, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.rooms.Delete(ctx, id); err != nil {
		if dberrors.IsNotFound(err) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *Service) Stats(ctx context.Context) (*RoomStatsResponse, error) {
	st, err := s.rooms.Stats(ctx)
	if err != nil {
		return nil, err
	}

	rate := 0
	if st.TotalRooms > 0 {
		rate = int(math.Round(float64(st.OccupiedRooms) / float64(st.TotalRooms) * 100))
	}

	return &RoomStatsResponse{
		TotalRooms:       st.TotalRooms,
		AvailableRooms:   st.AvailableRooms,
		OccupiedRooms:    st.OccupiedRooms,
		MaintenanceRooms: st.MaintenanceRooms,
		AverageFee:       int(math.Round(st.AverageFee)),
		OccupancyRate:    rate,
	}, nil
}
