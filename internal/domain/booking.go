package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

type Booking struct {
	ID          string        `json:"id" gorm:"primaryKey;size:10"`
	StudentID   string        `json:"studentId" gorm:"size:10;index;not null" validate:"required"`
	RoomID      string        `json:"roomId" gorm:"size:10;index;not null" validate:"required"`
	StartDate   string        `json:"startDate" gorm:"size:10;not null" validate:"required,datetime=2006-01-02"`
	EndDate     *string       `json:"endDate,omitempty" gorm:"size:10"`
	Status      BookingStatus `json:"status" gorm:"size:16;default:pending"`
	BookingDate string        `json:"bookingDate" gorm:"size:10;not null"`
	Amount      float64       `json:"amount" gorm:"not null" validate:"required,gt=0"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}
