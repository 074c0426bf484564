package room

import (
	"context"

	"hosteldesk/internal/domain"
	"hosteldesk/internal/repository"
)

type RoomRepository interface {
	List(ctx context.Context, f repository.RoomFilters) ([]domain.Room, error)
	GetByID(ctx context.Context, id string) (*domain.Room, error)
	Create(ctx context.Context, room *domain.Room) error
	Update(ctx context.Context, id string, cols map[string]interface{}) (*domain.Room, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (*repository.RoomStats, error)
}
