package student

type CreateStudentRequest struct {
	RegistrationNumber string  `json:"registrationNumber" validate:"required"`
	FirstName          string  `json:"firstName" validate:"required"`
	LastName           string  `json:"lastName" validate:"required"`
	Email              string  `json:"email" validate:"required,email"`
	Phone              string  `json:"phone" validate:"required"`
	Course             string  `json:"course" validate:"required"`
	Year               int     `json:"year" validate:"required,gt=0"`
	Gender             string  `json:"gender" validate:"required,oneof=male female"`
	DateOfBirth        string  `json:"dateOfBirth" validate:"required,datetime=2006-01-02"`
	Address            string  `json:"address" validate:"required"`
	GuardianName       string  `json:"guardianName" validate:"required"`
	GuardianPhone      string  `json:"guardianPhone" validate:"required"`
	RoomID             *string `json:"roomId"`
	ProfileImage       *string `json:"profileImage"`
}

// UpdateStudentRequest is a sparse patch: only non-nil fields are written.
type UpdateStudentRequest struct {
	RegistrationNumber *string  `json:"registrationNumber"`
	FirstName          *string  `json:"firstName"`
	LastName           *string  `json:"lastName"`
	Email              *string  `json:"email" validate:"omitempty,email"`
	Phone              *string  `json:"phone"`
	Course             *string  `json:"course"`
	Year               *int     `json:"year" validate:"omitempty,gt=0"`
	Gender             *string  `json:"gender" validate:"omitempty,oneof=male female"`
	DateOfBirth        *string  `json:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`
	Address            *string  `json:"address"`
	GuardianName       *string  `json:"guardianName"`
	GuardianPhone      *string  `json:"guardianPhone"`
	RoomID             *string  `json:"roomId"`
	Status             *string  `json:"status" validate:"omitempty,oneof=active inactive graduated"`
	JoinDate           *string  `json:"joinDate" validate:"omitempty,datetime=2006-01-02"`
	ProfileImage       *string  `json:"profileImage"`
}

func (r UpdateStudentRequest) columns() map[string]interface{} {
	cols := make(map[string]interface{})
	if r.RegistrationNumber != nil {
		cols["registration_number"] = *r.RegistrationNumber
	}
	if r.FirstName != nil {
		cols["first_name"] = *r.FirstName
	}
	if r.LastName != nil {
		cols["last_name"] = *r.LastName
	}
	if r.Email != nil {
		cols["email"] = *r.Email
	}
	if r.Phone != nil {
		cols["phone"] = *r.Phone
	}
	if r.Course != nil {
		cols["course"] = *r.Course
	}
	if r.Year != nil {
		cols["year"] = *r.Year
	}
	if r.Gender != nil {
		cols["gender"] = *r.Gender
	}
	if r.DateOfBirth != nil {
		cols["date_of_birth"] = *r.DateOfBirth
	}
	if r.Address != nil {
		cols["address"] = *r.Address
	}
	if r.GuardianName != nil {
		cols["guardian_name"] = *r.GuardianName
	}
	if r.GuardianPhone != nil {
		cols["guardian_phone"] = *r.GuardianPhone
	}
	if r.RoomID != nil {
		cols["room_id"] = *r.RoomID
	}
	if r.Status != nil {
		cols["status"] = *r.Status
	}
	if r.JoinDate != nil {
		cols["join_date"] = *r.JoinDate
	}
	if r.ProfileImage != nil {
		cols["profile_image"] = *r.ProfileImage
	}
	return cols
}
