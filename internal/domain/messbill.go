package domain

import "time"

type MessBillStatus string

const (
	MessBillPending MessBillStatus = "pending"
	MessBillPaid    MessBillStatus = "paid"
)

// MessBill is stored and seeded but has no HTTP surface; the mess billing
// workflow lives outside this service.
type MessBill struct {
	ID          string         `json:"id" gorm:"primaryKey;size:10"`
	StudentID   string         `json:"studentId" gorm:"size:10;index;not null"`
	Month       string         `json:"month" gorm:"size:20;not null"`
	Year        int            `json:"year" gorm:"not null"`
	Amount      float64        `json:"amount" gorm:"not null"`
	DaysPresent int            `json:"daysPresent" gorm:"not null"`
	TotalDays   int            `json:"totalDays" gorm:"not null"`
	Status      MessBillStatus `json:"status" gorm:"size:16;default:pending"`
	DueDate     string         `json:"dueDate" gorm:"size:10;not null"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}
