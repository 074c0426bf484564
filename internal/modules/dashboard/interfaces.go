package dashboard

import (
	"context"
	"time"

	"hosteldesk/internal/domain"
	"hosteldesk/internal/repository"
)

type AggregateRepository interface {
	Counts(ctx context.Context) (*repository.DashboardCounts, error)
	Overview(ctx context.Context, now time.Time) (*repository.OverviewAggregates, error)
}

type BookingReader interface {
	Recent(ctx context.Context, limit int) ([]domain.Booking, error)
}

type VisitorReader interface {
	Recent(ctx context.Context, limit int) ([]domain.Visitor, error)
}
