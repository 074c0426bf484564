package domain

import "time"

type VisitorStatus string

const (
	VisitorCheckedIn  VisitorStatus = "checked_in"
	VisitorCheckedOut VisitorStatus = "checked_out"
)

type Visitor struct {
	ID           string        `json:"id" gorm:"primaryKey;size:10"`
	Name         string        `json:"name" gorm:"size:100;not null" validate:"required"`
	Phone        string        `json:"phone" gorm:"size:20;not null" validate:"required"`
	Purpose      string        `json:"purpose" gorm:"size:200;not null" validate:"required"`
	StudentID    string        `json:"studentId" gorm:"size:10;index;not null" validate:"required"`
	CheckInTime  time.Time     `json:"checkInTime" gorm:"not null"`
	CheckOutTime *time.Time    `json:"checkOutTime,omitempty"`
	IDProof      string        `json:"idProof" gorm:"column:id_proof;size:50;not null" validate:"required"`
	Status       VisitorStatus `json:"status" gorm:"size:16;default:checked_in"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}
