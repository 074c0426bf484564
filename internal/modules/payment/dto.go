package payment

type CreatePaymentRequest struct {
	StudentID   string  `json:"studentId" validate:"required"`
	Type        string  `json:"type" validate:"required,oneof=room_fee mess_bill maintenance security_deposit"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	DueDate     string  `json:"dueDate" validate:"required,datetime=2006-01-02"`
	Description string  `json:"description"`
}

type UpdatePaymentRequest struct {
	StudentID   *string  `json:"studentId"`
	Type        *string  `json:"type" validate:"omitempty,oneof=room_fee mess_bill maintenance security_deposit"`
	Amount      *float64 `json:"amount" validate:"omitempty,gt=0"`
	DueDate     *string  `json:"dueDate" validate:"omitempty,datetime=2006-01-02"`
	PaidDate    *string  `json:"paidDate" validate:"omitempty,datetime=2006-01-02"`
	Status      *string  `json:"status" validate:"omitempty,oneof=pending paid overdue"`
	Description *string  `json:"description"`
}

func (r UpdatePaymentRequest) columns() map[string]interface{} {
	cols := make(map[string]interface{})
	if r.StudentID != nil {
		cols["student_id"] = *r.StudentID
	}
	if r.Type != nil {
		cols["type"] = *r.Type
	}
	if r.Amount != nil {
		cols["amount"] = *r.Amount
	}
	if r.DueDate != nil {
		cols["due_date"] = *r.DueDate
	}
	if r.PaidDate != nil {
		cols["paid_date"] = *r.PaidDate
	}
	if r.Status != nil {
		cols["status"] = *r.Status
	}
	if r.Description != nil {
		cols["description"] = *r.Description
	}
	return cols
}

type PaymentStatsResponse struct {
	TotalPayments   int64   `json:"totalPayments"`
	PaidPayments    int64   `json:"paidPayments"`
	PendingPayments int64   `json:"pendingPayments"`
	OverduePayments int64   `json:"overduePayments"`
	TotalRevenue    float64 `json:"totalRevenue"`
	PendingAmount   float64 `json:"pendingAmount"`
}
