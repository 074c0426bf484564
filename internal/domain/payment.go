package domain

import "time"

type PaymentType string

const (
	PaymentRoomFee         PaymentType = "room_fee"
	PaymentMessBill        PaymentType = "mess_bill"
	PaymentMaintenance     PaymentType = "maintenance"
	PaymentSecurityDeposit PaymentType = "security_deposit"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentOverdue PaymentStatus = "overdue"
)

type Payment struct {
	ID          string        `json:"id" gorm:"primaryKey;size:10"`
	StudentID   string        `json:"studentId" gorm:"size:10;index;not null" validate:"required"`
	Type        PaymentType   `json:"type" gorm:"size:20;not null" validate:"required,oneof=room_fee mess_bill maintenance security_deposit"`
	Amount      float64       `json:"amount" gorm:"not null" validate:"required,gt=0"`
	DueDate     string        `json:"dueDate" gorm:"size:10;not null" validate:"required,datetime=2006-01-02"`
	PaidDate    *string       `json:"paidDate,omitempty" gorm:"size:10"`
	Status      PaymentStatus `json:"status" gorm:"size:16;default:pending"`
	Description string        `json:"description" gorm:"type:text"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}
