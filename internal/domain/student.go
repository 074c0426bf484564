package domain

import "time"

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

type StudentStatus string

const (
	StudentActive    StudentStatus = "active"
	StudentInactive  StudentStatus = "inactive"
	StudentGraduated StudentStatus = "graduated"
)

type Student struct {
	ID                 string        `json:"id" gorm:"primaryKey;size:10"`
	RegistrationNumber string        `json:"registrationNumber" gorm:"size:20;uniqueIndex;not null" validate:"required"`
	FirstName          string        `json:"firstName" gorm:"size:50;not null" validate:"required"`
	LastName           string        `json:"lastName" gorm:"size:50;not null" validate:"required"`
	Email              string        `json:"email" gorm:"size:100;uniqueIndex;not null" validate:"required,email"`
	Phone              string        `json:"phone" gorm:"size:20;not null" validate:"required"`
	Course             string        `json:"course" gorm:"size:100;not null" validate:"required"`
	Year               int           `json:"year" gorm:"not null" validate:"required,gt=0"`
	Gender             Gender        `json:"gender" gorm:"size:10;not null" validate:"required,oneof=male female"`
	DateOfBirth        string        `json:"dateOfBirth" gorm:"size:10;not null" validate:"required,datetime=2006-01-02"`
	Address            string        `json:"address" gorm:"type:text;not null" validate:"required"`
	GuardianName       string        `json:"guardianName" gorm:"size:100;not null" validate:"required"`
	GuardianPhone      string        `json:"guardianPhone" gorm:"size:20;not null" validate:"required"`
	RoomID             *string       `json:"roomId,omitempty" gorm:"size:10"`
	Status             StudentStatus `json:"status" gorm:"size:16;default:active"`
	JoinDate           string        `json:"joinDate" gorm:"size:10;not null"`
	ProfileImage       *string       `json:"profileImage,omitempty" gorm:"size:255"`
	CreatedAt          time.Time     `json:"createdAt"`
	UpdatedAt          time.Time     `json:"updatedAt"`

	// Dependent rows removed with the student.
	Bookings  []Booking  `json:"-" gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE"`
	Visitors  []Visitor  `json:"-" gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE"`
	Payments  []Payment  `json:"-" gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE"`
	MessBills []MessBill `json:"-" gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE"`
}
