package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

// DashboardRepository runs the cross-table aggregate reads behind the
// dashboard endpoints. It works on the raw connection via sqlx since
// everything here is scalar aggregates, no entity mapping.
type DashboardRepository struct {
	db *sqlx.DB
}

func NewDashboardRepository(db *sqlx.DB) *DashboardRepository {
	return &DashboardRepository{db: db}
}

type DashboardCounts struct {
	TotalStudents   int64   `db:"total_students"`
	TotalRooms      int64   `db:"total_rooms"`
	OccupiedRooms   int64   `db:"occupied_rooms"`
	TotalRevenue    float64 `db:"total_revenue"`
	PendingPayments int64   `db:"pending_payments"`
}

func (r *DashboardRepository) Counts(ctx context.Context) (*DashboardCounts, error) {
	var out DashboardCounts
	q := `
SELECT
  (SELECT COUNT(*) FROM students)                                              AS total_students,
  (SELECT COUNT(*) FROM rooms)                                                 AS total_rooms,
  (SELECT COUNT(*) FROM rooms WHERE status = 'occupied')                       AS occupied_rooms,
  (SELECT COALESCE(SUM(amount),0) FROM bookings WHERE status = 'confirmed')    AS total_revenue,
  (SELECT COUNT(*) FROM payments WHERE status = 'pending')                     AS pending_payments
`
	if err := r.db.GetContext(ctx, &out, q); err != nil {
		return nil, err
	}
	return &out, nil
}

type OverviewAggregates struct {
	TotalHostels     int64   `db:"total_hostels"`
	MaleHostels      int64   `db:"male_hostels"`
	FemaleHostels    int64   `db:"female_hostels"`
	MixedHostels     int64   `db:"mixed_hostels"`
	TotalRooms       int64   `db:"total_rooms"`
	OccupiedRooms    int64   `db:"occupied_rooms"`
	AvailableRooms   int64   `db:"available_rooms"`
	MaintenanceRooms int64   `db:"maintenance_rooms"`
	TotalStudents    int64   `db:"total_students"`
	ActiveStudents   int64   `db:"active_students"`
	InactiveStudents int64   `db:"inactive_students"`
	VisitorsInside   int64   `db:"visitors_inside"`
	VisitorsToday    int64   `db:"visitors_today"`
	MonthlyRevenue   float64 `db:"monthly_revenue"`
	PendingPayments  int64   `db:"pending_payments"`
	PendingAmount    float64 `db:"pending_amount"`
}

func (r *DashboardRepository) Overview(ctx context.Context, now time.Time) (*OverviewAggregates, error) {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.Add(24 * time.Hour)
	monthPrefix := now.Format("2006-01") + "%"

	var out OverviewAggregates
	q := r.db.Rebind(`
SELECT
  (SELECT COUNT(*) FROM hostels)                                               AS total_hostels,
  (SELECT COUNT(*) FROM hostels WHERE type = 'male')                           AS male_hostels,
  (SELECT COUNT(*) FROM hostels WHERE type = 'female')                         AS female_hostels,
  (SELECT COUNT(*) FROM hostels WHERE type = 'mixed')                          AS mixed_hostels,
  (SELECT COUNT(*) FROM rooms)                                                 AS total_rooms,
  (SELECT COUNT(*) FROM rooms WHERE status = 'occupied')                       AS occupied_rooms,
  (SELECT COUNT(*) FROM rooms WHERE status = 'available')                      AS available_rooms,
  (SELECT COUNT(*) FROM rooms WHERE status = 'maintenance')                    AS maintenance_rooms,
  (SELECT COUNT(*) FROM students)                                              AS total_students,
  (SELECT COUNT(*) FROM students WHERE status = 'active')                      AS active_students,
  (SELECT COUNT(*) FROM students WHERE status = 'inactive')                    AS inactive_students,
  (SELECT COUNT(*) FROM visitors WHERE status = 'checked_in')                  AS visitors_inside,
  (SELECT COUNT(*) FROM visitors WHERE check_in_time >= ? AND check_in_time < ?) AS visitors_today,
  (SELECT COALESCE(SUM(amount),0) FROM bookings
     WHERE status = 'confirmed' AND booking_date LIKE ?)                       AS monthly_revenue,
  (SELECT COUNT(*) FROM payments WHERE status = 'pending')                     AS pending_payments,
  (SELECT COALESCE(SUM(amount),0) FROM payments WHERE status = 'pending')      AS pending_amount
`)
	if err := r.db.GetContext(ctx, &out, q, dayStart, dayEnd, monthPrefix); err != nil {
		return nil, err
	}
	return &out, nil
}
