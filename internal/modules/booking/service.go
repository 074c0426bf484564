package booking

import (
	"context"
	"math"
	"time"

	"hosteldesk/internal/domain"
	"hosteldesk/internal/pkg/dberrors"
	"hosteldesk/internal/pkg/validator"
	"hosteldesk/internal/repository"
)

type Service struct {
	bookings BookingRepository
}

func NewService(bookings BookingRepository) *Service {
	return &Service{bookings: bookings}
}

func (s *Service) List(ctx context.Context, f repository.BookingFilters) ([]domain.Booking, error) {
	return s.bookings.List(ctx, f)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if dberrors.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (s *Service) Create(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	if errs := validator.Validate(req); errs != nil {
		return nil, ErrValidation
	}
	if req.EndDate != nil && *req.EndDate <= req.StartDate {
		return nil, ErrValidation
	}

	overlap, err := s.bookings.HasOverlap(ctx, req.RoomID, req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	if overlap {
		return nil, ErrConflict
	}

	b := &domain.Booking{
		StudentID:   req.StudentID,
		RoomID:      req.RoomID,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Status:      domain.BookingPending,
		BookingDate: time.Now().Format("2006-01-02"),
		Amount:      req.Amount,
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpdateBookingRequest) (*domain.Booking, error) {
	if errs := validator.Validate(req); errs != nil {
		return nil, ErrValidation
	}

	cols := req.columns()
	if len(cols) == 0 {
		return nil, ErrNoFields
	}

	b, err := s.bookings.Update(ctx, id, cols)
	if err != nil {
		if dberrors.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

// Confirm moves a booking from pending to confirmed; any other starting
// status is rejected.
func (s *Service) Confirm(ctx context.Context, id string) (*domain.Booking, error) {
	b, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.Status != domain.BookingPending {
		return nil, ErrInvalidStatusTransition
	}
	return s.bookings.UpdateStatus(ctx, id, domain.BookingConfirmed)
}

// Cancel is unconditional: any booking can be cancelled at any time.
func (s *Service) Cancel(ctx context.Context, id string) (*domain.Booking, error) {
	b, err := s.bookings.UpdateStatus(ctx, id, domain.BookingCancelled)
	if err != nil {
		if dberrors.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.bookings.Delete(ctx, id); err != nil {
		if dberrors.IsNotFound(err) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *Service) Stats(ctx context.Context) (*BookingStatsResponse, error) {
	st, err := s.bookings.Stats(ctx)
	if err != nil {
		return nil, err
	}

	rate := 0
	if st.TotalBookings > 0 {
		rate = int(math.Round(float64(st.ConfirmedBookings) / float64(st.TotalBookings) * 100))
	}

	return &BookingStatsResponse{
		TotalBookings:     st.TotalBookings,
		ConfirmedBookings: st.ConfirmedBookings,
		PendingBookings:   st.PendingBookings,
		CancelledBookings: st.CancelledBookings,
		TotalRevenue:      st.TotalRevenue,
		ConfirmationRate:  rate,
	}, nil
}
