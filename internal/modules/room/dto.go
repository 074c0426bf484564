package room

import "hosteldesk/internal/domain"

type CreateRoomRequest struct {
	Number     string   `json:"number" validate:"required"`
	HostelID   string   `json:"hostelId" validate:"required"`
	Capacity   int      `json:"capacity" validate:"required,gt=0"`
	Type       string   `json:"type" validate:"required,oneof=single double triple quad"`
	MonthlyFee float64  `json:"monthlyFee" validate:"required,gt=0"`
	Amenities  []string `json:"amenities"`
	Floor      int      `json:"floor" validate:"gte=0"`
}

type UpdateRoomRequest struct {
	Number     *string   `json:"number"`
	HostelID   *string   `json:"hostelId"`
	Capacity   *int      `json:"capacity" validate:"omitempty,gt=0"`
	Occupancy  *int      `json:"occupancy" validate:"omitempty,gte=0"`
	Type       *string   `json:"type" validate:"omitempty,oneof=single double triple quad"`
	MonthlyFee *float64  `json:"monthlyFee" validate:"omitempty,gt=0"`
	Status     *string   `json:"status" validate:"omitempty,oneof=available occupied maintenance"`
	Amenities  *[]string `json:"amenities"`
	Floor      *int      `json:"floor" validate:"omitempty,gte=0"`
}

func (r UpdateRoomRequest) columns() map[string]interface{} {
	cols := make(map[string]interface{})
	if r.Number != nil {
		cols["number"] = *r.Number
	}
	if r.HostelID != nil {
		cols["hostel_id"] = *r.HostelID
	}
	if r.Capacity != nil {
		cols["capacity"] = *r.Capacity
	}
	if r.Occupancy != nil {
		cols["occupancy"] = *r.Occupancy
	}
	if r.Type != nil {
		cols["type"] = *r.Type
	}
	if r.MonthlyFee != nil {
		cols["monthly_fee"] = *r.MonthlyFee
	}
	if r.Status != nil {
		cols["status"] = *r.Status
	}
	if r.Amenities != nil {
		cols["amenities"] = domain.StringList(*r.Amenities)
	}
	if r.Floor != nil {
		cols["floor"] = *r.Floor
	}
	return cols
}

type RoomStatsResponse struct {
	TotalRooms       int64 `json:"totalRooms"`
	AvailableRooms   int64 `json:"availableRooms"`
	OccupiedRooms    int64 `json:"occupiedRooms"`
	MaintenanceRooms int64 `json:"maintenanceRooms"`
	AverageFee       int   `json:"averageFee"`
	OccupancyRate    int   `json:"occupancyRate"`
}
