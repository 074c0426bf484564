package visitor

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"hosteldesk/internal/domain"
	"hosteldesk/internal/repository"
)

type MockVisitorRepository struct {
	mock.Mock
}

func (m *MockVisitorRepository) List(ctx context.Context, f repository.VisitorFilters) ([]domain.Visitor, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Visitor), args.Error(1)
}

func (m *MockVisitorRepository) GetByID(ctx context.Context, id string) (*domain.Visitor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Visitor), args.Error(1)
}

func (m *MockVisitorRepository) Create(ctx context.Context, v *domain.Visitor) error {
	args := m.Called(ctx, v)
	if v != nil {
		v.ID = "V999" // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockVisitorRepository) CheckOut(ctx context.Context, id string, at time.Time) (*domain.Visitor, error) {
	args := m.Called(ctx, id, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Visitor), args.Error(1)
}

func (m *MockVisitorRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockVisitorRepository) Stats(ctx context.Context, now time.Time) (*repository.VisitorStats, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.VisitorStats), args.Error(1)
}

func TestService_CheckIn_Success(t *testing.T) {
	mockVisitors := new(MockVisitorRepository)
	mockVisitors.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockVisitors)

	v, err := service.CheckIn(context.Background(), CheckInRequest{
		Name:      "John Doe",
		Phone:     "+254 712 345 678",
		Purpose:   "Parent Visit",
		StudentID: "ST001",
		IDProof:   "Kenyan ID",
	})

	assert.NoError(t, err)
	assert.Equal(t, "V999", v.ID)
	assert.Equal(t, domain.VisitorCheckedIn, v.Status)
	assert.False(t, v.CheckInTime.IsZero())
	assert.Nil(t, v.CheckOutTime)
}

func TestService_CheckIn_MissingIDProof(t *testing.T) {
	mockVisitors := new(MockVisitorRepository)
	service := NewService(mockVisitors)

	_, err := service.CheckIn(context.Background(), CheckInRequest{
		Name:      "John Doe",
		Phone:     "+254 712 345 678",
		Purpose:   "Parent Visit",
		StudentID: "ST001",
	})

	assert.ErrorIs(t, err, ErrValidation)
	mockVisitors.AssertNotCalled(t, "Create")
}

func TestService_CheckOut_Success(t *testing.T) {
	mockVisitors := new(MockVisitorRepository)

	mockVisitors.On("GetByID", mock.Anything, "V001").Return(&domain.Visitor{
		ID:     "V001",
		Status: domain.VisitorCheckedIn,
	}, nil)
	out := time.Now()
	mockVisitors.On("CheckOut", mock.Anything, "V001", mock.Anything).Return(&domain.Visitor{
		ID:           "V001",
		Status:       domain.VisitorCheckedOut,
		CheckOutTime: &out,
	}, nil)

	service := NewService(mockVisitors)

	v, err := service.CheckOut(context.Background(), "V001")

	assert.NoError(t, err)
	assert.Equal(t, domain.VisitorCheckedOut, v.Status)
	assert.NotNil(t, v.CheckOutTime)
	mockVisitors.AssertExpectations(t)
}

func TestService_CheckOut_AlreadyOut(t *testing.T) {
	mockVisitors := new(MockVisitorRepository)

	mockVisitors.On("GetByID", mock.Anything, "V002").Return(&domain.Visitor{
		ID:     "V002",
		Status: domain.VisitorCheckedOut,
	}, nil)

	service := NewService(mockVisitors)

	_, err := service.CheckOut(context.Background(), "V002")

	assert.ErrorIs(t, err, ErrAlreadyCheckedOut)
	mockVisitors.AssertNotCalled(t, "CheckOut")
}

func TestService_Stats_DerivesCheckedIn(t *testing.T) {
	mockVisitors := new(MockVisitorRepository)

	mockVisitors.On("Stats", mock.Anything, mock.Anything).Return(&repository.VisitorStats{
		CurrentlyInside: 2,
		TotalToday:      5,
		CheckedOutToday: 3,
	}, nil)

	service := NewService(mockVisitors)

	stats, err := service.Stats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(2), stats.CurrentlyInside)
	assert.Equal(t, int64(5), stats.TotalToday)
	assert.Equal(t, int64(3), stats.CheckedOut)
	assert.Equal(t, int64(2), stats.CheckedIn)
}
