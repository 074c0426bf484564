package visitor

import (
	"context"
	"time"

	"hosteldesk/internal/domain"
	"hosteldesk/internal/repository"
)

type VisitorRepository interface {
	List(ctx context.Context, f repository.VisitorFilters) ([]domain.Visitor, error)
	GetByID(ctx context.Context, id string) (*domain.Visitor, error)
	Create(ctx context.Context, v *domain.Visitor) error
	CheckOut(ctx context.Context, id string, at time.Time) (*domain.Visitor, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context, now time.Time) (*repository.VisitorStats, error)
}
