package payment

import (
	"context"
	"time"

	"hosteldesk/internal/domain"
	"hosteldesk/internal/pkg/dberrors"
	"hosteldesk/internal/pkg/validator"
	"hosteldesk/internal/repository"
)

type Service struct {
	payments PaymentRepository
	students StudentChecker
}

func NewService(payments PaymentRepository, students StudentChecker) *Service {
	return &Service{payments: payments, students: students}
}

func (s *Service) List(ctx context.Context, f repository.PaymentFilters) ([]domain.Payment, error) {
	return s.payments.List(ctx, f)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Payment, error) {
	p, err := s.payments.GetByID(ctx, id)
	if err != nil {
		if dberrors.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *Service) Create(ctx context.Context, req CreatePaymentRequest) (*domain.Payment, error) {
	if errs := validator.Validate(req); errs != nil {
		return nil, ErrValidation
	}

	ok, err := s.students.Exists(ctx, req.StudentID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrStudentMissing
	}

	p := &domain.Payment{
		StudentID:   req.StudentID,
		Type:        domain.PaymentType(req.Type),
		Amount:      req.Amount,
		DueDate:     req.DueDate,
		Status:      domain.PaymentPending,
		Description: req.Description,
	}

	if err := s.payments.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpdatePaymentRequest) (*domain.Payment, error) {
	if errs := validator.Validate(req); errs != nil {
		return nil, ErrValidation
	}

	cols := req.columns()
	if len(cols) == 0 {
		return nil, ErrNoFields
	}

	p, err := s.payments.Update(ctx, id, cols)
	if err != nil {
		if dberrors.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

// MarkPaid stamps today as the paid date. Calling it on an already paid
// payment just refreshes the same final state.
func (s *Service) MarkPaid(ctx context.Context, id string) (*domain.Payment, error) {
	p, err := s.payments.MarkPaid(ctx, id, time.Now().Format("2006-01-02"))
	if err != nil {
		if dberrors.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.payments.Delete(ctx, id); err != nil {
		if dberrors.IsNotFound(err) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *Service) Stats(ctx context.Context) (*PaymentStatsResponse, error) {
	st, err := s.payments.Stats(ctx)
	if err != nil {
		return nil, err
	}

	return &PaymentStatsResponse{
		TotalPayments:   st.TotalPayments,
		PaidPayments:    st.PaidPayments,
		PendingPayments: st.PendingPayments,
		OverduePayments: st.OverduePayments,
		TotalRevenue:    st.TotalRevenue,
		PendingAmount:   st.PendingAmount,
	}, nil
}
