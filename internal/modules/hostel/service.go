package hostel

import (
	"context"
	"math"

	"hosteldesk/internal/domain"
	"hosteldesk/internal/pkg/dberrors"
	"hosteldesk/internal/pkg/validator"
	"hosteldesk/internal/repository"
)

type Service struct {
	hostels HostelRepository
}

func NewService(hostels HostelRepository) *Service {
	return &Service{hostels: hostels}
}

func (s *Service) List(ctx context.Context, f repository.HostelFilters) ([]domain.Hostel, error) {
	return s.hostels.List(ctx, f)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Hostel, error) {
	h, err := s.hostels.GetByID(ctx, id)
	if err != nil {
		if dberrors.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return h, nil
}

func (s *Service) Create(ctx context.Context, req CreateHostelRequest) (*domain.Hostel, error) {
	if errs := validator.Validate(req); errs != nil {
		return nil, ErrValidation
	}

	h := &domain.Hostel{
		Name:          req.Name,
		Address:       req.Address,
		TotalRooms:    req.TotalRooms,
		OccupiedRooms: 0,
		Type:          domain.HostelType(req.Type),
		Facilities:    domain.StringList(req.Facilities),
		Warden:        req.Warden,
		WardenContact: req.WardenContact,
	}
	if h.Facilities == nil {
		h.Facilities = domain.StringList{}
	}

	if err := s.hostels.Create(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpdateHostelRequest) (*domain.Hostel, error) {
	if errs := validator.Validate(req); errs != nil {
		return nil, ErrValidation
	}

	cols := req.columns()
	if len(cols) == 0 {
		return nil, ErrNoFields
	}

	h, err := s.hostels.Update(ctx, id, cols)
	if err != nil {
		if dberrors.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return h, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.hostels.Delete(ctx, id); err != nil {
		if dberrors.IsNotFound(err) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *Service) Stats(ctx context.Context) (*HostelStatsResponse, error) {
	st, err := s.hostels.Stats(ctx)
	if err != nil {
		return nil, err
	}

	rate := 0
	if st.TotalRooms > 0 {
		rate = int(math.Round(float64(st.TotalOccupied) / float64(st.TotalRooms) * 100))
	}

	return &HostelStatsResponse{
		TotalHostels:   st.TotalHostels,
		TotalRooms:     st.TotalRooms,
		TotalOccupied:  st.TotalOccupied,
		AvailableRooms: st.TotalRooms - st.TotalOccupied,
		OccupancyRate:  rate,
		MaleHostels:    st.MaleHostels,
		FemaleHostels:  st.FemaleHostels,
		MixedHostels:   st.MixedHostels,
	}, nil
}
