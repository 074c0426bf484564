package booking

import (
	"context"

	"hosteldesk/internal/domain"
	"hosteldesk/internal/repository"
)

type BookingRepository interface {
	List(ctx context.Context, f repository.BookingFilters) ([]domain.Booking, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	HasOverlap(ctx context.Context, roomID, startDate string, endDate *string) (bool, error)
	Create(ctx context.Context, b *domain.Booking) error
	Update(ctx context.Context, id string, cols map[string]interface{}) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (*repository.BookingStats, error)
}
