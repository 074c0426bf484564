package payment

import (
	"context"

	"hosteldesk/internal/domain"
	"hosteldesk/internal/repository"
)

type PaymentRepository interface {
	List(ctx context.Context, f repository.PaymentFilters) ([]domain.Payment, error)
	GetByID(ctx context.Context, id string) (*domain.Payment, error)
	Create(ctx context.Context, p *domain.Payment) error
	Update(ctx context.Context, id string, cols map[string]interface{}) (*domain.Payment, error)
	MarkPaid(ctx context.Context, id, paidDate string) (*domain.Payment, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (*repository.PaymentStats, error)
}

// StudentChecker verifies the payment's student exists before creating.
type StudentChecker interface {
	Exists(ctx context.Context, id string) (bool, error)
}
