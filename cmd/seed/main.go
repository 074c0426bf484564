package main

import (
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"hosteldesk/internal/config"
	"hosteldesk/internal/database"
	"hosteldesk/internal/domain"
	"hosteldesk/internal/pkg/logger"
	"hosteldesk/internal/repository"
)

func main() {
	cfg := config.Load()
	logger.Setup(cfg.LogLevel, true)

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}

	log.Info().Msg("running migrations")
	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}

	// Child tables first so foreign keys never dangle mid-wipe.
	log.Info().Msg("clearing old data")
	for _, table := range []string{
		"mess_bills", "payments", "visitors", "bookings",
		"students", "rooms", "hostels", "sequences",
	} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			log.Fatal().Err(err).Str("table", table).Msg("wipe failed")
		}
	}

	if err := seed(db); err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}

	log.Info().Msg("database seeded")
}

func seed(db *gorm.DB) error {
	hostels := []domain.Hostel{
		{
			ID: "H1", Name: "NYOOTI HOSTELS - Block A", Address: "University Campus, Block A",
			TotalRooms: 50, OccupiedRooms: 42, Type: domain.HostelMixed,
			Facilities: domain.StringList{"24/7 Security", "Wi-Fi", "Laundry Room", "Common Room", "Study Hall", "Cafeteria", "Gym", "Parking"},
			Warden:     "Mr. Kwame Asante", WardenContact: "+254 701 111 222",
		},
		{
			ID: "H2", Name: "NYOOTI HOSTELS - Block B", Address: "University Campus, Block B",
			TotalRooms: 40, OccupiedRooms: 35, Type: domain.HostelFemale,
			Facilities: domain.StringList{"24/7 Security", "Wi-Fi", "Laundry Room", "Common Room", "Study Hall", "Beauty Salon", "Parking"},
			Warden:     "Mrs. Akosua Mensah", WardenContact: "+254 722 333 444",
		},
		{
			ID: "H3", Name: "NYOOTI HOSTELS - Block C", Address: "University Campus, Block C",
			TotalRooms: 60, OccupiedRooms: 51, Type: domain.HostelMale,
			Facilities: domain.StringList{"24/7 Security", "Wi-Fi", "Laundry Room", "Common Room", "Study Hall", "Sports Facility", "Barber Shop", "Parking"},
			Warden:     "Mr. Joseph Boateng", WardenContact: "+254 733 555 666",
		},
	}
	if err := db.Create(&hostels).Error; err != nil {
		return err
	}

	rooms := []domain.Room{
		{ID: "R101", Number: "101", HostelID: "H1", Capacity: 2, Occupancy: 2, Type: domain.RoomDouble, MonthlyFee: 2500, Status: domain.RoomOccupied,
			Amenities: domain.StringList{"AC", "Wi-Fi", "Study Table", "Wardrobe"}, Floor: 1},
		{ID: "R102", Number: "102", HostelID: "H1", Capacity: 1, Occupancy: 0, Type: domain.RoomSingle, MonthlyFee: 3500, Status: domain.RoomAvailable,
			Amenities: domain.StringList{"AC", "Wi-Fi", "Study Table", "Balcony", "Wardrobe"}, Floor: 1},
		{ID: "R201", Number: "201", HostelID: "H1", Capacity: 3, Occupancy: 3, Type: domain.RoomTriple, MonthlyFee: 2000, Status: domain.RoomOccupied,
			Amenities: domain.StringList{"Fan", "Wi-Fi", "Study Table", "Wardrobe"}, Floor: 2},
		{ID: "R202", Number: "202", HostelID: "H1", Capacity: 2, Occupancy: 0, Type: domain.RoomDouble, MonthlyFee: 2500, Status: domain.RoomMaintenance,
			Amenities: domain.StringList{"AC", "Wi-Fi", "Study Table", "Wardrobe"}, Floor: 2},
		{ID: "R203", Number: "203", HostelID: "H1", Capacity: 4, Occupancy: 1, Type: domain.RoomQuad, MonthlyFee: 1800, Status: domain.RoomAvailable,
			Amenities: domain.StringList{"Fan", "Wi-Fi", "Study Table", "Wardrobe"}, Floor: 2},
		{ID: "R205", Number: "205", HostelID: "H2", Capacity: 2, Occupancy: 1, Type: domain.RoomDouble, MonthlyFee: 2800, Status: domain.RoomOccupied,
			Amenities: domain.StringList{"AC", "Wi-Fi", "Study Table", "Wardrobe", "Balcony"}, Floor: 2},
	}
	if err := db.Create(&rooms).Error; err != nil {
		return err
	}

	students := []domain.Student{
		{
			ID: "ST001", RegistrationNumber: "ST2024001", FirstName: "John", LastName: "Mensah",
			Email: "john.mensah@student.edu", Phone: "+254 712 345 678",
			Course: "Computer Science", Year: 2, Gender: domain.GenderMale,
			DateOfBirth: "2002-05-15", Address: "123 Main Street, Nairobi",
			GuardianName: "Mary Mensah", GuardianPhone: "+254 722 987 654",
			RoomID: ptr("R101"), Status: domain.StudentActive, JoinDate: "2024-01-15",
		},
		{
			ID: "ST002", RegistrationNumber: "ST2024002", FirstName: "Akosua", LastName: "Asante",
			Email: "akosua.asante@student.edu", Phone: "+254 733 555 012",
			Course: "Business Administration", Year: 3, Gender: domain.GenderFemale,
			DateOfBirth: "2001-08-22", Address: "456 Oak Avenue, Mombasa",
			GuardianName: "Kwame Asante", GuardianPhone: "+254 701 111 222",
			RoomID: ptr("R205"), Status: domain.StudentActive, JoinDate: "2023-09-10",
		},
		{
			ID: "ST003", RegistrationNumber: "ST2024003", FirstName: "David", LastName: "Ochieng",
			Email: "david.ochieng@student.edu", Phone: "+254 744 777 888",
			Course: "Engineering", Year: 1, Gender: domain.GenderMale,
			DateOfBirth: "2003-03-10", Address: "789 Pine Street, Kisumu",
			GuardianName: "Sarah Ochieng", GuardianPhone: "+254 755 999 000",
			RoomID: ptr("R102"), Status: domain.StudentActive, JoinDate: "2024-01-20",
		},
	}
	if err := db.Create(&students).Error; err != nil {
		return err
	}

	bookings := []domain.Booking{
		{ID: "B001", StudentID: "ST001", RoomID: "R101", StartDate: "2024-01-15", Status: domain.BookingConfirmed, BookingDate: "2024-01-10", Amount: 2500},
		{ID: "B002", StudentID: "ST002", RoomID: "R205", StartDate: "2024-01-20", Status: domain.BookingPending, BookingDate: "2024-01-12", Amount: 3000},
		{ID: "B003", StudentID: "ST003", RoomID: "R102", StartDate: "2024-02-01", EndDate: ptr("2024-06-30"), Status: domain.BookingConfirmed, BookingDate: "2024-01-18", Amount: 3500},
	}
	if err := db.Create(&bookings).Error; err != nil {
		return err
	}

	visitors := []domain.Visitor{
		{ID: "V001", Name: "John Doe", Phone: "+254 712 345 678", Purpose: "Parent Visit", StudentID: "ST001",
			CheckInTime: seedTime("2024-01-15 10:30:00"), IDProof: "Kenyan ID", Status: domain.VisitorCheckedIn},
		{ID: "V002", Name: "Mary Smith", Phone: "+254 722 987 654", Purpose: "Friend Visit", StudentID: "ST002",
			CheckInTime: seedTime("2024-01-15 14:15:00"), CheckOutTime: timePtr(seedTime("2024-01-15 18:30:00")),
			IDProof: "Passport", Status: domain.VisitorCheckedOut},
		{ID: "V003", Name: "David Wilson", Phone: "+254 733 555 012", Purpose: "Academic Meeting", StudentID: "ST001",
			CheckInTime: seedTime("2024-01-15 16:45:00"), IDProof: "Driver's License", Status: domain.VisitorCheckedIn},
	}
	if err := db.Create(&visitors).Error; err != nil {
		return err
	}

	payments := []domain.Payment{
		{ID: "P001", StudentID: "ST001", Type: domain.PaymentRoomFee, Amount: 3000, DueDate: "2024-02-01", PaidDate: ptr("2024-01-28"), Status: domain.PaymentPaid, Description: "January 2024 Room Fee"},
		{ID: "P002", StudentID: "ST002", Type: domain.PaymentMessBill, Amount: 2500, DueDate: "2024-02-01", Status: domain.PaymentPending, Description: "January 2024 Mess Bill"},
		{ID: "P003", StudentID: "ST003", Type: domain.PaymentSecurityDeposit, Amount: 5000, DueDate: "2024-01-15", PaidDate: ptr("2024-01-10"), Status: domain.PaymentPaid, Description: "Security Deposit"},
		{ID: "P004", StudentID: "ST001", Type: domain.PaymentMessBill, Amount: 2500, DueDate: "2024-02-01", Status: domain.PaymentPending, Description: "January 2024 Mess Bill"},
		{ID: "P005", StudentID: "ST002", Type: domain.PaymentRoomFee, Amount: 3000, DueDate: "2024-02-01", Status: domain.PaymentPending, Description: "January 2024 Room Fee"},
	}
	if err := db.Create(&payments).Error; err != nil {
		return err
	}

	messBills := []domain.MessBill{
		{ID: "M001", StudentID: "ST001", Month: "January", Year: 2024, Amount: 2500, DaysPresent: 28, TotalDays: 31, Status: domain.MessBillPending, DueDate: "2024-02-01"},
		{ID: "M002", StudentID: "ST002", Month: "January", Year: 2024, Amount: 2250, DaysPresent: 25, TotalDays: 31, Status: domain.MessBillPaid, DueDate: "2024-02-01"},
		{ID: "M003", StudentID: "ST003", Month: "January", Year: 2024, Amount: 900, DaysPresent: 10, TotalDays: 31, Status: domain.MessBillPending, DueDate: "2024-02-01"},
	}
	if err := db.Create(&messBills).Error; err != nil {
		return err
	}

	// Keep generated IDs ahead of the fixture rows.
	for name, value := range map[string]int64{
		"hostels":    3,
		"rooms":      205,
		"students":   3,
		"bookings":   3,
		"visitors":   3,
		"payments":   5,
		"mess_bills": 3,
	} {
		if err := repository.AdvanceSequence(db, name, value); err != nil {
			return err
		}
	}

	return nil
}

func seedTime(v string) time.Time {
	t, err := time.ParseInLocation("2006-01-02 15:04:05", v, time.Local)
	if err != nil {
		log.Fatal().Err(err).Str("value", v).Msg("bad fixture timestamp")
	}
	return t
}

func ptr(v string) *string { return &v }

func timePtr(v time.Time) *time.Time { return &v }
