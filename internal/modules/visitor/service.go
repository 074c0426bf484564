package visitor

import (
	"context"
	"time"

	"hosteldesk/internal/domain"
	"hosteldesk/internal/pkg/dberrors"
	"hosteldesk/internal/pkg/validator"
	"hosteldesk/internal/repository"
)

type Service struct {
	visitors VisitorRepository
}

func NewService(visitors VisitorRepository) *Service {
	return &Service{visitors: visitors}
}

func (s *Service) List(ctx context.Context, f repository.VisitorFilters) ([]domain.Visitor, error) {
	return s.visitors.List(ctx, f)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Visitor, error) {
	v, err := s.visitors.GetByID(ctx, id)
	if err != nil {
		if dberrors.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return v, nil
}

func (s *Service) CheckIn(ctx context.Context, req CheckInRequest) (*domain.Visitor, error) {
	if errs := validator.Validate(req); errs != nil {
		return nil, ErrValidation
	}

	v := &domain.Visitor{
		Name:        req.Name,
		Phone:       req.Phone,
		Purpose:     req.Purpose,
		StudentID:   req.StudentID,
		CheckInTime: time.Now(),
		IDProof:     req.IDProof,
		Status:      domain.VisitorCheckedIn,
	}

	if err := s.visitors.Create(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *Service) CheckOut(ctx context.Context, id string) (*domain.Visitor, error) {
	v, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if v.Status == domain.VisitorCheckedOut {
		return nil, ErrAlreadyCheckedOut
	}
	return s.visitors.CheckOut(ctx, id, time.Now())
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.visitors.Delete(ctx, id); err != nil {
		if dberrors.IsNotFound(err) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *Service) Stats(ctx context.Context) (*VisitorStatsResponse, error) {
	st, err := s.visitors.Stats(ctx, time.Now())
	if err != nil {
		return nil, err
	}

	return &VisitorStatsResponse{
		CurrentlyInside: st.CurrentlyInside,
		TotalToday:      st.TotalToday,
		CheckedOut:      st.CheckedOutToday,
		CheckedIn:       st.TotalToday - st.CheckedOutToday,
	}, nil
}
