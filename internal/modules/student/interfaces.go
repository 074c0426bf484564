package student

import (
	"context"

	"hosteldesk/internal/domain"
	"hosteldesk/internal/repository"
)

// StudentRepository is the storage surface the service needs.
type StudentRepository interface {
	List(ctx context.Context, f repository.StudentFilters) ([]domain.Student, error)
	GetByID(ctx context.Context, id string) (*domain.Student, error)
	Create(ctx context.Context, s *domain.Student) error
	Update(ctx context.Context, id string, cols map[string]interface{}) (*domain.Student, error)
	Delete(ctx context.Context, id string) error
}
