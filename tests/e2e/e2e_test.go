package e2e

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"hosteldesk/internal/database"
	"hosteldesk/internal/middleware"
	"hosteldesk/internal/modules/booking"
	"hosteldesk/internal/modules/dashboard"
	"hosteldesk/internal/modules/hostel"
	"hosteldesk/internal/modules/payment"
	"hosteldesk/internal/modules/room"
	"hosteldesk/internal/modules/student"
	"hosteldesk/internal/modules/visitor"
	"hosteldesk/internal/repository"
)

type TestSuite struct {
	router *gin.Engine
	db     *gorm.DB
}

// setupTestSuite wires the full API against a throwaway SQLite file. A file
// DSN (not :memory:) keeps every pooled connection on the same database.
func setupTestSuite(t *testing.T) *TestSuite {
	dsn := filepath.Join(t.TempDir(), "hosteldesk_test.db")

	db, err := database.Connect(dsn)
	require.NoError(t, err, "failed to open test database")
	require.NoError(t, database.Migrate(db), "failed to migrate test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlxDB := sqlx.NewDb(sqlDB, database.DriverName(dsn))

	studentRepo := repository.NewStudentRepository(db)
	hostelRepo := repository.NewHostelRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	visitorRepo := repository.NewVisitorRepository(db)
	dashboardRepo := repository.NewDashboardRepository(sqlxDB)

	r := gin.New()
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(nil))

	api := r.Group("/api")
	student.NewHandler(student.NewService(studentRepo)).RegisterRoutes(api)
	hostel.NewHandler(hostel.NewService(hostelRepo)).RegisterRoutes(api)
	room.NewHandler(room.NewService(roomRepo)).RegisterRoutes(api)
	booking.NewHandler(booking.NewService(bookingRepo)).RegisterRoutes(api)
	payment.NewHandler(payment.NewService(paymentRepo, studentRepo)).RegisterRoutes(api)
	visitor.NewHandler(visitor.NewService(visitorRepo)).RegisterRoutes(api)
	dashboard.NewHandler(dashboard.NewService(dashboardRepo, bookingRepo, visitorRepo)).RegisterRoutes(api)

	return &TestSuite{router: r, db: db}
}

func (s *TestSuite) makeRequest(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decodeObject(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "body: %s", w.Body.String())
	return out
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]interface{} {
	var out []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "body: %s", w.Body.String())
	return out
}

func (s *TestSuite) createHostel(t *testing.T, name string) string {
	w := s.makeRequest(t, "POST", "/api/hostels", map[string]interface{}{
		"name":          name,
		"address":       "University Campus",
		"totalRooms":    20,
		"type":          "mixed",
		"facilities":    []string{"Wi-Fi", "Laundry Room"},
		"warden":        "Mr. Kwame Asante",
		"wardenContact": "+254 701 111 222",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decodeObject(t, w)["id"].(string)
}

func (s *TestSuite) createRoom(t *testing.T, hostelID, number string) string {
	w := s.makeRequest(t, "POST", "/api/rooms", map[string]interface{}{
		"number":     number,
		"hostelId":   hostelID,
		"capacity":   2,
		"type":       "double",
		"monthlyFee": 2500,
		"amenities":  []string{"AC", "Wi-Fi", "Study Table"},
		"floor":      1,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decodeObject(t, w)["id"].(string)
}

func (s *TestSuite) createStudent(t *testing.T, regNo, email string) string {
	w := s.makeRequest(t, "POST", "/api/students", map[string]interface{}{
		"registrationNumber": regNo,
		"firstName":          "John",
		"lastName":           "Mensah",
		"email":              email,
		"phone":              "+254 712 345 678",
		"course":             "Computer Science",
		"year":               2,
		"gender":             "male",
		"dateOfBirth":        "2002-05-15",
		"address":            "123 Main Street, Nairobi",
		"guardianName":       "Mary Mensah",
		"guardianPhone":      "+254 722 987 654",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decodeObject(t, w)["id"].(string)
}

func TestStudentLifecycle(t *testing.T) {
	suite := setupTestSuite(t)

	var studentID string

	t.Run("create assigns generated ID and defaults", func(t *testing.T) {
		studentID = suite.createStudent(t, "ST2026001", "john.mensah@student.edu")
		assert.Equal(t, "ST001", studentID)

		w := suite.makeRequest(t, "GET", "/api/students/"+studentID, nil)
		require.Equal(t, http.StatusOK, w.Code)
		got := decodeObject(t, w)
		assert.Equal(t, "active", got["status"])
		assert.NotEmpty(t, got["joinDate"])
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		w := suite.makeRequest(t, "POST", "/api/students", map[string]interface{}{
			"registrationNumber": "ST2026099",
			"firstName":          "Jane",
			"lastName":           "Mensah",
			"email":              "john.mensah@student.edu",
			"phone":              "+254 712 000 000",
			"course":             "Law",
			"year":               1,
			"gender":             "female",
			"dateOfBirth":        "2003-01-01",
			"address":            "1 Side Street",
			"guardianName":       "Peter Mensah",
			"guardianPhone":      "+254 700 000 000",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decodeObject(t, w)["error"], "already exists")
	})

	t.Run("course filter matches substring", func(t *testing.T) {
		suite.createStudent(t, "ST2026002", "second@student.edu")

		w := suite.makeRequest(t, "GET", "/api/students?course=Computer", nil)
		require.Equal(t, http.StatusOK, w.Code)
		list := decodeList(t, w)
		require.Len(t, list, 2)

		w = suite.makeRequest(t, "GET", "/api/students?course=Law", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, decodeList(t, w))
	})

	t.Run("partial update touches only sent fields", func(t *testing.T) {
		w := suite.makeRequest(t, "PUT", "/api/students/"+studentID, map[string]interface{}{
			"course": "Mathematics",
		})
		require.Equal(t, http.StatusOK, w.Code)
		got := decodeObject(t, w)
		assert.Equal(t, "Mathematics", got["course"])
		assert.Equal(t, "John", got["firstName"])
	})

	t.Run("delete then 404", func(t *testing.T) {
		w := suite.makeRequest(t, "DELETE", "/api/students/"+studentID, nil)
		assert.Equal(t, http.StatusNoContent, w.Code)

		w = suite.makeRequest(t, "GET", "/api/students/"+studentID, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestBookingFlow(t *testing.T) {
	suite := setupTestSuite(t)

	hostelID := suite.createHostel(t, "Block A")
	roomID := suite.createRoom(t, hostelID, "101")
	st1 := suite.createStudent(t, "ST2026001", "first@student.edu")
	st2 := suite.createStudent(t, "ST2026002", "second@student.edu")

	var bookingID string

	t.Run("create starts pending", func(t *testing.T) {
		w := suite.makeRequest(t, "POST", "/api/bookings", map[string]interface{}{
			"studentId": st1,
			"roomId":    roomID,
			"startDate": "2026-09-01",
			"amount":    2500,
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		got := decodeObject(t, w)
		bookingID = got["id"].(string)
		assert.Equal(t, "B001", bookingID)
		assert.Equal(t, "pending", got["status"])
		assert.NotEmpty(t, got["bookingDate"])
	})

	t.Run("overlapping booking is rejected", func(t *testing.T) {
		// The open-ended booking above blocks any later start date.
		w := suite.makeRequest(t, "POST", "/api/bookings", map[string]interface{}{
			"studentId": st2,
			"roomId":    roomID,
			"startDate": "2026-10-01",
			"endDate":   "2026-12-31",
			"amount":    2500,
		})
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "Room is already booked for this period", decodeObject(t, w)["error"])
	})

	t.Run("end date before start date is rejected", func(t *testing.T) {
		w := suite.makeRequest(t, "POST", "/api/bookings", map[string]interface{}{
			"studentId": st2,
			"roomId":    roomID,
			"startDate": "2026-10-01",
			"endDate":   "2026-09-01",
			"amount":    2500,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("confirm pending booking", func(t *testing.T) {
		w := suite.makeRequest(t, "PUT", "/api/bookings/"+bookingID+"/confirm", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "confirmed", decodeObject(t, w)["status"])
	})

	t.Run("confirm is pending-only", func(t *testing.T) {
		w := suite.makeRequest(t, "PUT", "/api/bookings/"+bookingID+"/confirm", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Only pending bookings can be confirmed", decodeObject(t, w)["error"])
	})

	t.Run("cancel frees the room", func(t *testing.T) {
		w := suite.makeRequest(t, "PUT", "/api/bookings/"+bookingID+"/cancel", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "cancelled", decodeObject(t, w)["status"])

		w = suite.makeRequest(t, "POST", "/api/bookings", map[string]interface{}{
			"studentId": st2,
			"roomId":    roomID,
			"startDate": "2026-10-01",
			"endDate":   "2026-12-31",
			"amount":    2500,
		})
		assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})

	t.Run("stats tally with list", func(t *testing.T) {
		w := suite.makeRequest(t, "GET", "/api/bookings/stats", nil)
		require.Equal(t, http.StatusOK, w.Code)
		stats := decodeObject(t, w)
		assert.EqualValues(t, 2, stats["totalBookings"])
		assert.EqualValues(t, 1, stats["cancelledBookings"])
		assert.EqualValues(t, 1, stats["pendingBookings"])
	})
}

func TestVisitorFlow(t *testing.T) {
	suite := setupTestSuite(t)
	studentID := suite.createStudent(t, "ST2026001", "host@student.edu")

	var visitorID string

	t.Run("check in", func(t *testing.T) {
		w := suite.makeRequest(t, "POST", "/api/visitors/checkin", map[string]interface{}{
			"name":      "John Doe",
			"phone":     "+254 712 345 678",
			"purpose":   "Parent Visit",
			"studentId": studentID,
			"idProof":   "Kenyan ID",
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		got := decodeObject(t, w)
		visitorID = got["id"].(string)
		assert.Equal(t, "checked_in", got["status"])
		assert.NotEmpty(t, got["checkInTime"])
	})

	t.Run("check in requires id proof", func(t *testing.T) {
		w := suite.makeRequest(t, "POST", "/api/visitors/checkin", map[string]interface{}{
			"name":      "No Papers",
			"phone":     "+254 700 000 000",
			"purpose":   "Visit",
			"studentId": studentID,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("stats while inside", func(t *testing.T) {
		w := suite.makeRequest(t, "GET", "/api/visitors/stats", nil)
		require.Equal(t, http.StatusOK, w.Code)
		stats := decodeObject(t, w)
		assert.EqualValues(t, 1, stats["currentlyInside"])
		assert.EqualValues(t, 1, stats["totalToday"])
		assert.EqualValues(t, 0, stats["checkedOut"])
	})

	t.Run("check out once", func(t *testing.T) {
		w := suite.makeRequest(t, "PUT", "/api/visitors/"+visitorID+"/checkout", nil)
		require.Equal(t, http.StatusOK, w.Code)
		got := decodeObject(t, w)
		assert.Equal(t, "checked_out", got["status"])
		assert.NotEmpty(t, got["checkOutTime"])
	})

	t.Run("second check out fails", func(t *testing.T) {
		w := suite.makeRequest(t, "PUT", "/api/visitors/"+visitorID+"/checkout", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Visitor already checked out", decodeObject(t, w)["error"])
	})
}

func TestPaymentFlow(t *testing.T) {
	suite := setupTestSuite(t)
	studentID := suite.createStudent(t, "ST2026001", "payer@student.edu")

	var paymentID string

	t.Run("create requires existing student", func(t *testing.T) {
		w := suite.makeRequest(t, "POST", "/api/payments", map[string]interface{}{
			"studentId": "ST999",
			"type":      "room_fee",
			"amount":    3000,
			"dueDate":   "2026-09-30",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Student not found", decodeObject(t, w)["error"])
	})

	t.Run("create pending payment", func(t *testing.T) {
		w := suite.makeRequest(t, "POST", "/api/payments", map[string]interface{}{
			"studentId":   studentID,
			"type":        "room_fee",
			"amount":      3000,
			"dueDate":     "2026-09-30",
			"description": "September Room Fee",
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		got := decodeObject(t, w)
		paymentID = got["id"].(string)
		assert.Equal(t, "pending", got["status"])
		assert.Nil(t, got["paidDate"])
	})

	t.Run("mark paid stamps date", func(t *testing.T) {
		w := suite.makeRequest(t, "PUT", "/api/payments/"+paymentID+"/paid", nil)
		require.Equal(t, http.StatusOK, w.Code)
		got := decodeObject(t, w)
		assert.Equal(t, "paid", got["status"])
		assert.NotEmpty(t, got["paidDate"])
	})

	t.Run("mark paid is idempotent", func(t *testing.T) {
		w := suite.makeRequest(t, "PUT", "/api/payments/"+paymentID+"/paid", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "paid", decodeObject(t, w)["status"])
	})

	t.Run("stats reflect the paid payment", func(t *testing.T) {
		w := suite.makeRequest(t, "GET", "/api/payments/stats", nil)
		require.Equal(t, http.StatusOK, w.Code)
		stats := decodeObject(t, w)
		assert.EqualValues(t, 1, stats["totalPayments"])
		assert.EqualValues(t, 1, stats["paidPayments"])
		assert.EqualValues(t, 3000, stats["totalRevenue"])
	})
}

func TestCascadeDeletes(t *testing.T) {
	suite := setupTestSuite(t)

	hostelID := suite.createHostel(t, "Block A")
	roomID := suite.createRoom(t, hostelID, "101")
	studentID := suite.createStudent(t, "ST2026001", "cascade@student.edu")

	w := suite.makeRequest(t, "POST", "/api/bookings", map[string]interface{}{
		"studentId": studentID,
		"roomId":    roomID,
		"startDate": "2026-09-01",
		"amount":    2500,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = suite.makeRequest(t, "POST", "/api/payments", map[string]interface{}{
		"studentId": studentID,
		"type":      "room_fee",
		"amount":    3000,
		"dueDate":   "2026-09-30",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = suite.makeRequest(t, "POST", "/api/visitors/checkin", map[string]interface{}{
		"name":      "Visitor",
		"phone":     "+254 700 000 001",
		"purpose":   "Visit",
		"studentId": studentID,
		"idProof":   "Passport",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	t.Run("deleting the student removes dependents", func(t *testing.T) {
		w := suite.makeRequest(t, "DELETE", "/api/students/"+studentID, nil)
		require.Equal(t, http.StatusNoContent, w.Code)

		for _, path := range []string{"/api/bookings", "/api/payments", "/api/visitors"} {
			w = suite.makeRequest(t, "GET", path, nil)
			require.Equal(t, http.StatusOK, w.Code)
			assert.Empty(t, decodeList(t, w), path)
		}
	})

	t.Run("deleting the hostel removes its rooms", func(t *testing.T) {
		w := suite.makeRequest(t, "DELETE", "/api/hostels/"+hostelID, nil)
		require.Equal(t, http.StatusNoContent, w.Code)

		w = suite.makeRequest(t, "GET", "/api/rooms", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, decodeList(t, w))
	})
}

func TestRoomFiltersAndAmenities(t *testing.T) {
	suite := setupTestSuite(t)

	hostelID := suite.createHostel(t, "Block A")
	roomID := suite.createRoom(t, hostelID, "101")

	t.Run("amenities survive the round trip", func(t *testing.T) {
		w := suite.makeRequest(t, "GET", "/api/rooms/"+roomID, nil)
		require.Equal(t, http.StatusOK, w.Code)
		got := decodeObject(t, w)
		assert.Equal(t, []interface{}{"AC", "Wi-Fi", "Study Table"}, got["amenities"])
	})

	t.Run("available filter excludes full and maintenance rooms", func(t *testing.T) {
		w := suite.makeRequest(t, "PUT", "/api/rooms/"+roomID, map[string]interface{}{
			"status": "maintenance",
		})
		require.Equal(t, http.StatusOK, w.Code)

		w = suite.makeRequest(t, "GET", "/api/rooms?available=true", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, decodeList(t, w))

		w = suite.makeRequest(t, "GET", "/api/rooms?status=maintenance", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decodeList(t, w), 1)
	})
}

func TestDashboardEndpoints(t *testing.T) {
	suite := setupTestSuite(t)

	hostelID := suite.createHostel(t, "Block A")
	roomID := suite.createRoom(t, hostelID, "101")
	studentID := suite.createStudent(t, "ST2026001", "dash@student.edu")

	w := suite.makeRequest(t, "POST", "/api/bookings", map[string]interface{}{
		"studentId": studentID,
		"roomId":    roomID,
		"startDate": "2026-09-01",
		"amount":    2500,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	bookingID := decodeObject(t, w)["id"].(string)

	w = suite.makeRequest(t, "PUT", "/api/bookings/"+bookingID+"/confirm", nil)
	require.Equal(t, http.StatusOK, w.Code)

	t.Run("stats counts and recents", func(t *testing.T) {
		w := suite.makeRequest(t, "GET", "/api/dashboard/stats", nil)
		require.Equal(t, http.StatusOK, w.Code)
		stats := decodeObject(t, w)
		assert.EqualValues(t, 1, stats["totalStudents"])
		assert.EqualValues(t, 1, stats["totalRooms"])
		assert.EqualValues(t, 2500, stats["totalRevenue"])
		recents := stats["recentBookings"].([]interface{})
		require.Len(t, recents, 1)
	})

	t.Run("overview sections", func(t *testing.T) {
		w := suite.makeRequest(t, "GET", "/api/dashboard/overview", nil)
		require.Equal(t, http.StatusOK, w.Code)
		overview := decodeObject(t, w)

		hostels := overview["hostels"].(map[string]interface{})
		assert.EqualValues(t, 1, hostels["total"])
		assert.EqualValues(t, 1, hostels["mixedHostels"])

		students := overview["students"].(map[string]interface{})
		assert.EqualValues(t, 1, students["active"])

		financial := overview["financial"].(map[string]interface{})
		assert.EqualValues(t, 94.2, financial["collectionRate"])
	})

	t.Run("activity returns entries", func(t *testing.T) {
		w := suite.makeRequest(t, "GET", "/api/dashboard/activity", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, decodeList(t, w))
	})
}

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}
