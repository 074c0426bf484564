package hostel

import (
	"context"

	"hosteldesk/internal/domain"
	"hosteldesk/internal/repository"
)

type HostelRepository interface {
	List(ctx context.Context, f repository.HostelFilters) ([]domain.Hostel, error)
	GetByID(ctx context.Context, id string) (*domain.Hostel, error)
	Create(ctx context.Context, h *domain.Hostel) error
	Update(ctx context.Context, id string, cols map[string]interface{}) (*domain.Hostel, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (*repository.HostelStats, error)
}
