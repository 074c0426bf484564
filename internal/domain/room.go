package domain

import "time"

type RoomType string

const (
	RoomSingle RoomType = "single"
	RoomDouble RoomType = "double"
	RoomTriple RoomType = "triple"
	RoomQuad   RoomType = "quad"
)

type RoomStatus string

const (
	RoomAvailable   RoomStatus = "available"
	RoomOccupied    RoomStatus = "occupied"
	RoomMaintenance RoomStatus = "maintenance"
)

type Room struct {
	ID         string     `json:"id" gorm:"primaryKey;size:10"`
	Number     string     `json:"number" gorm:"size:10;not null" validate:"required"`
	HostelID   string     `json:"hostelId" gorm:"size:10;index;not null" validate:"required"`
	Capacity   int        `json:"capacity" gorm:"not null" validate:"required,gt=0"`
	Occupancy  int        `json:"occupancy" gorm:"not null;default:0"`
	Type       RoomType   `json:"type" gorm:"size:10;not null" validate:"required,oneof=single double triple quad"`
	MonthlyFee float64    `json:"monthlyFee" gorm:"not null" validate:"required,gt=0"`
	Status     RoomStatus `json:"status" gorm:"size:16;default:available"`
	Amenities  StringList `json:"amenities" gorm:"type:text"`
	Floor      int        `json:"floor" gorm:"not null" validate:"gte=0"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`

	Bookings []Booking `json:"-" gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE"`
}
