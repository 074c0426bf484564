package visitor

type CheckInRequest struct {
	Name      string `json:"name" validate:"required"`
	Phone     string `json:"phone" validate:"required"`
	Purpose   string `json:"purpose" validate:"required"`
	StudentID string `json:"studentId" validate:"required"`
	IDProof   string `json:"idProof" validate:"required"`
}

type VisitorStatsResponse struct {
	CurrentlyInside int64 `json:"currentlyInside"`
	TotalToday      int64 `json:"totalToday"`
	CheckedOut      int64 `json:"checkedOut"`
	CheckedIn       int64 `json:"checkedIn"`
}
