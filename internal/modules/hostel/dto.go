package hostel

import "hosteldesk/internal/domain"

type CreateHostelRequest struct {
	Name          string   `json:"name" validate:"required"`
	Address       string   `json:"address" validate:"required"`
	TotalRooms    int      `json:"totalRooms" validate:"required,gte=0"`
	Type          string   `json:"type" validate:"required,oneof=male female mixed"`
	Facilities    []string `json:"facilities"`
	Warden        string   `json:"warden" validate:"required"`
	WardenContact string   `json:"wardenContact" validate:"required"`
}

type UpdateHostelRequest struct {
	Name          *string   `json:"name"`
	Address       *string   `json:"address"`
	TotalRooms    *int      `json:"totalRooms" validate:"omitempty,gte=0"`
	OccupiedRooms *int      `json:"occupiedRooms" validate:"omitempty,gte=0"`
	Type          *string   `json:"type" validate:"omitempty,oneof=male female mixed"`
	Facilities    *[]string `json:"facilities"`
	Warden        *string   `json:"warden"`
	WardenContact *string   `json:"wardenContact"`
}

func (r UpdateHostelRequest) columns() map[string]interface{} {
	cols := make(map[string]interface{})
	if r.Name != nil {
		cols["name"] = *r.Name
	}
	if r.Address != nil {
		cols["address"] = *r.Address
	}
	if r.TotalRooms != nil {
		cols["total_rooms"] = *r.TotalRooms
	}
	if r.OccupiedRooms != nil {
		cols["occupied_rooms"] = *r.OccupiedRooms
	}
	if r.Type != nil {
		cols["type"] = *r.Type
	}
	if r.Facilities != nil {
		cols["facilities"] = domain.StringList(*r.Facilities)
	}
	if r.Warden != nil {
		cols["warden"] = *r.Warden
	}
	if r.WardenContact != nil {
		cols["warden_contact"] = *r.WardenContact
	}
	return cols
}

type HostelStatsResponse struct {
	TotalHostels   int64 `json:"totalHostels"`
	TotalRooms     int64 `json:"totalRooms"`
	TotalOccupied  int64 `json:"totalOccupied"`
	AvailableRooms int64 `json:"availableRooms"`
	OccupancyRate  int   `json:"occupancyRate"`
	MaleHostels    int64 `json:"maleHostels"`
	FemaleHostels  int64 `json:"femaleHostels"`
	MixedHostels   int64 `json:"mixedHostels"`
}
