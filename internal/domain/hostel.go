package domain

import "time"

type HostelType string

const (
	HostelMale   HostelType = "male"
	HostelFemale HostelType = "female"
	HostelMixed  HostelType = "mixed"
)

type Hostel struct {
	ID            string     `json:"id" gorm:"primaryKey;size:10"`
	Name          string     `json:"name" gorm:"size:100;not null" validate:"required"`
	Address       string     `json:"address" gorm:"type:text;not null" validate:"required"`
	TotalRooms    int        `json:"totalRooms" gorm:"not null;default:0" validate:"required,gte=0"`
	OccupiedRooms int        `json:"occupiedRooms" gorm:"not null;default:0"`
	Type          HostelType `json:"type" gorm:"size:10;not null" validate:"required,oneof=male female mixed"`
	Facilities    StringList `json:"facilities" gorm:"type:text"`
	Warden        string     `json:"warden" gorm:"size:100;not null" validate:"required"`
	WardenContact string     `json:"wardenContact" gorm:"size:20;not null" validate:"required"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`

	Rooms []Room `json:"-" gorm:"foreignKey:HostelID;constraint:OnDelete:CASCADE"`
}
