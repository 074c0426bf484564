package dashboard

import "hosteldesk/internal/domain"

type StatsResponse struct {
	TotalStudents   int64            `json:"totalStudents"`
	TotalRooms      int64            `json:"totalRooms"`
	OccupiedRooms   int64            `json:"occupiedRooms"`
	TotalRevenue    float64          `json:"totalRevenue"`
	PendingPayments int64            `json:"pendingPayments"`
	RecentBookings  []domain.Booking `json:"recentBookings"`
	RecentVisitors  []domain.Visitor `json:"recentVisitors"`
}

type OverviewResponse struct {
	Hostels   HostelOverview    `json:"hostels"`
	Rooms     RoomOverview      `json:"rooms"`
	Students  StudentOverview   `json:"students"`
	Visitors  VisitorOverview   `json:"visitors"`
	Financial FinancialOverview `json:"financial"`
}

type HostelOverview struct {
	Total         int64 `json:"total"`
	MaleHostels   int64 `json:"maleHostels"`
	FemaleHostels int64 `json:"femaleHostels"`
	MixedHostels  int64 `json:"mixedHostels"`
}

type RoomOverview struct {
	Total         int64 `json:"total"`
	Occupied      int64 `json:"occupied"`
	Available     int64 `json:"available"`
	Maintenance   int64 `json:"maintenance"`
	OccupancyRate int64 `json:"occupancyRate"`
}

type StudentOverview struct {
	Total        int64 `json:"total"`
	Active       int64 `json:"active"`
	Inactive     int64 `json:"inactive"`
	NewThisMonth int64 `json:"newThisMonth"`
}

type VisitorOverview struct {
	CurrentlyInside int64 `json:"currentlyInside"`
	TodayTotal      int64 `json:"todayTotal"`
	ThisWeekTotal   int64 `json:"thisWeekTotal"`
}

type FinancialOverview struct {
	MonthlyRevenue  float64 `json:"monthlyRevenue"`
	PendingPayments int64   `json:"pendingPayments"`
	TotalPending    float64 `json:"totalPending"`
	CollectionRate  float64 `json:"collectionRate"`
}

type ActivityEntry struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	User      string `json:"user"`
}
