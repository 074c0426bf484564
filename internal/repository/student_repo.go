package repository

import (
	"context"

	"gorm.io/gorm"

	"hosteldesk/internal/domain"
)

type StudentFilters struct {
	Status string
	Course string
	Year   int
}

type StudentRepository struct {
	db *gorm.DB
}

func NewStudentRepository(db *gorm.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

func (r *StudentRepository) List(ctx context.Context, f StudentFilters) ([]domain.Student, error) {
	q := r.db.WithContext(ctx).Model(&domain.Student{})

	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Course != "" {
		q = q.Where("course LIKE ?", "%"+f.Course+"%")
	}
	if f.Year > 0 {
		q = q.Where("year = ?", f.Year)
	}

	students := make([]domain.Student, 0)
	err := q.Find(&students).Error
	return students, err
}

func (r *StudentRepository) GetByID(ctx context.Context, id string) (*domain.Student, error) {
	var s domain.Student
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StudentRepository) Exists(ctx context.Context, id string) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&domain.Student{}).Where("id = ?", id).Count(&cnt).Error
	return cnt > 0, err
}

func (r *StudentRepository) Create(ctx context.Context, s *domain.Student) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		id, err := nextID(tx, "students", "ST", 3)
		if err != nil {
			return err
		}
		s.ID = id
		return tx.Create(s).Error
	})
}

// Update applies an allow-listed column map and returns the fresh row.
func (r *StudentRepository) Update(ctx context.Context, id string, cols map[string]interface{}) (*domain.Student, error) {
	res := r.db.WithContext(ctx).Model(&domain.Student{}).Where("id = ?", id).Updates(cols)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *StudentRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&domain.Student{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
