package student

import (
	"context"
	"time"

	"hosteldesk/internal/domain"
	"hosteldesk/internal/pkg/dberrors"
	"hosteldesk/internal/pkg/validator"
	"hosteldesk/internal/repository"
)

type Service struct {
	students StudentRepository
}

func NewService(students StudentRepository) *Service {
	return &Service{students: students}
}

func (s *Service) List(ctx context.Context, f repository.StudentFilters) ([]domain.Student, error) {
	return s.students.List(ctx, f)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Student, error) {
	st, err := s.students.GetByID(ctx, id)
	if err != nil {
		if dberrors.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return st, nil
}

func (s *Service) Create(ctx context.Context, req CreateStudentRequest) (*domain.Student, error) {
	if errs := validator.Validate(req); errs != nil {
		return nil, ErrValidation
	}

	st := &domain.Student{
		RegistrationNumber: req.RegistrationNumber,
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		Email:              req.Email,
		Phone:              req.Phone,
		Course:             req.Course,
		Year:               req.Year,
		Gender:             domain.Gender(req.Gender),
		DateOfBirth:        req.DateOfBirth,
		Address:            req.Address,
		GuardianName:       req.GuardianName,
		GuardianPhone:      req.GuardianPhone,
		RoomID:             req.RoomID,
		Status:             domain.StudentActive,
		JoinDate:           time.Now().Format("2006-01-02"),
		ProfileImage:       req.ProfileImage,
	}

	if err := s.students.Create(ctx, st); err != nil {
		if dberrors.IsDuplicateKey(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return st, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpdateStudentRequest) (*domain.Student, error) {
	if errs := validator.Validate(req); errs != nil {
		return nil, ErrValidation
	}

	cols := req.columns()
	if len(cols) == 0 {
		return nil, ErrNoFields
	}

	st, err := s.students.Update(ctx, id, cols)
	if err != nil {
		switch {
		case dberrors.IsNotFound(err):
			return nil, ErrNotFound
		case dberrors.IsDuplicateKey(err):
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return st, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.students.Delete(ctx, id); err != nil {
		if dberrors.IsNotFound(err) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
