package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"hosteldesk/internal/domain"
	"hosteldesk/internal/repository"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) List(ctx context.Context, f repository.BookingFilters) ([]domain.Booking, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) HasOverlap(ctx context.Context, roomID, startDate string, endDate *string) (bool, error) {
	args := m.Called(ctx, roomID, startDate, endDate)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	if b != nil {
		b.ID = "B999" // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockBookingRepository) Update(ctx context.Context, id string, cols map[string]interface{}) (*domain.Booking, error) {
	args := m.Called(ctx, id, cols)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBookingRepository) Stats(ctx context.Context) (*repository.BookingStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.BookingStats), args.Error(1)
}

func TestService_Create_Success(t *testing.T) {
	mockBookings := new(MockBookingRepository)

	mockBookings.On("HasOverlap", mock.Anything, "R101", "2026-09-01", (*string)(nil)).Return(false, nil)
	mockBookings.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockBookings)

	b, err := service.Create(context.Background(), CreateBookingRequest{
		StudentID: "ST001",
		RoomID:    "R101",
		StartDate: "2026-09-01",
		Amount:    2500,
	})

	assert.NoError(t, err)
	assert.NotNil(t, b)
	assert.Equal(t, "B999", b.ID)
	assert.Equal(t, domain.BookingPending, b.Status)
	assert.NotEmpty(t, b.BookingDate)
	mockBookings.AssertExpectations(t)
}

func TestService_Create_Overlap(t *testing.T) {
	mockBookings := new(MockBookingRepository)

	end := "2026-12-31"
	mockBookings.On("HasOverlap", mock.Anything, "R101", "2026-09-01", &end).Return(true, nil)

	service := NewService(mockBookings)

	_, err := service.Create(context.Background(), CreateBookingRequest{
		StudentID: "ST001",
		RoomID:    "R101",
		StartDate: "2026-09-01",
		EndDate:   &end,
		Amount:    2500,
	})

	assert.ErrorIs(t, err, ErrConflict)
	mockBookings.AssertNotCalled(t, "Create")
}

func TestService_Create_EndBeforeStart(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	service := NewService(mockBookings)

	end := "2026-08-01"
	_, err := service.Create(context.Background(), CreateBookingRequest{
		StudentID: "ST001",
		RoomID:    "R101",
		StartDate: "2026-09-01",
		EndDate:   &end,
		Amount:    2500,
	})

	assert.ErrorIs(t, err, ErrValidation)
	mockBookings.AssertNotCalled(t, "HasOverlap")
}

func TestService_Create_MissingFields(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	service := NewService(mockBookings)

	_, err := service.Create(context.Background(), CreateBookingRequest{
		RoomID: "R101",
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_Confirm_Success(t *testing.T) {
	mockBookings := new(MockBookingRepository)

	mockBookings.On("GetByID", mock.Anything, "B001").Return(&domain.Booking{
		ID:     "B001",
		Status: domain.BookingPending,
	}, nil)
	mockBookings.On("UpdateStatus", mock.Anything, "B001", domain.BookingConfirmed).Return(&domain.Booking{
		ID:     "B001",
		Status: domain.BookingConfirmed,
	}, nil)

	service := NewService(mockBookings)

	b, err := service.Confirm(context.Background(), "B001")

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingConfirmed, b.Status)
	mockBookings.AssertExpectations(t)
}

func TestService_Confirm_NotPending(t *testing.T) {
	mockBookings := new(MockBookingRepository)

	mockBookings.On("GetByID", mock.Anything, "B001").Return(&domain.Booking{
		ID:     "B001",
		Status: domain.BookingCancelled,
	}, nil)

	service := NewService(mockBookings)

	_, err := service.Confirm(context.Background(), "B001")

	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
	mockBookings.AssertNotCalled(t, "UpdateStatus")
}

func TestService_Cancel_AnyStatus(t *testing.T) {
	mockBookings := new(MockBookingRepository)

	mockBookings.On("UpdateStatus", mock.Anything, "B001", domain.BookingCancelled).Return(&domain.Booking{
		ID:     "B001",
		Status: domain.BookingCancelled,
	}, nil)

	service := NewService(mockBookings)

	b, err := service.Cancel(context.Background(), "B001")

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingCancelled, b.Status)
}

func TestService_Stats_ConfirmationRate(t *testing.T) {
	mockBookings := new(MockBookingRepository)

	mockBookings.On("Stats", mock.Anything).Return(&repository.BookingStats{
		TotalBookings:     4,
		ConfirmedBookings: 3,
		PendingBookings:   1,
		TotalRevenue:      9000,
	}, nil)

	service := NewService(mockBookings)

	stats, err := service.Stats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 75, stats.ConfirmationRate)
	assert.Equal(t, 9000.0, stats.TotalRevenue)
}

func TestService_Update_NoFields(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	service := NewService(mockBookings)

	_, err := service.Update(context.Background(), "B001", UpdateBookingRequest{})

	assert.ErrorIs(t, err, ErrNoFields)
	mockBookings.AssertNotCalled(t, "Update")
}
