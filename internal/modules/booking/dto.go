package booking

type CreateBookingRequest struct {
	StudentID string  `json:"studentId" validate:"required"`
	RoomID    string  `json:"roomId" validate:"required"`
	StartDate string  `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate   *string `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
	Amount    float64 `json:"amount" validate:"required,gt=0"`
}

type UpdateBookingRequest struct {
	StudentID   *string  `json:"studentId"`
	RoomID      *string  `json:"roomId"`
	StartDate   *string  `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate     *string  `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
	Status      *string  `json:"status" validate:"omitempty,oneof=pending confirmed cancelled completed"`
	BookingDate *string  `json:"bookingDate" validate:"omitempty,datetime=2006-01-02"`
	Amount      *float64 `json:"amount" validate:"omitempty,gt=0"`
}

func (r UpdateBookingRequest) columns() map[string]interface{} {
	cols := make(map[string]interface{})
	if r.StudentID != nil {
		cols["student_id"] = *r.StudentID
	}
	if r.RoomID != nil {
		cols["room_id"] = *r.RoomID
	}
	if r.StartDate != nil {
		cols["start_date"] = *r.StartDate
	}
	if r.EndDate != nil {
		cols["end_date"] = *r.EndDate
	}
	if r.Status != nil {
		cols["status"] = *r.Status
	}
	if r.BookingDate != nil {
		cols["booking_date"] = *r.BookingDate
	}
	if r.Amount != nil {
		cols["amount"] = *r.Amount
	}
	return cols
}

type BookingStatsResponse struct {
	TotalBookings     int64   `json:"totalBookings"`
	ConfirmedBookings int64   `json:"confirmedBookings"`
	PendingBookings   int64   `json:"pendingBookings"`
	CancelledBookings int64   `json:"cancelledBookings"`
	TotalRevenue      float64 `json:"totalRevenue"`
	ConfirmationRate  int     `json:"confirmationRate"`
}
