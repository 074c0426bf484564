package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"hosteldesk/internal/domain"
)

type PaymentFilters struct {
	Status    string
	Type      string
	StudentID string
}

type PaymentStats struct {
	TotalPayments   int64
	PaidPayments    int64
	PendingPayments int64
	OverduePayments int64
	TotalRevenue    float64
	PendingAmount   float64
}

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) List(ctx context.Context, f PaymentFilters) ([]domain.Payment, error) {
	q := r.db.WithContext(ctx).Model(&domain.Payment{})

	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}
	if f.StudentID != "" {
		q = q.Where("student_id = ?", f.StudentID)
	}

	payments := make([]domain.Payment, 0)
	err := q.Order("due_date DESC").Find(&payments).Error
	return payments, err
}

func (r *PaymentRepository) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	var p domain.Payment
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PaymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		id, err := nextID(tx, "payments", "P", 3)
		if err != nil {
			return err
		}
		p.ID = id
		return tx.Create(p).Error
	})
}

func (r *PaymentRepository) Update(ctx context.Context, id string, cols map[string]interface{}) (*domain.Payment, error) {
	res := r.db.WithContext(ctx).Model(&domain.Payment{}).Where("id = ?", id).Updates(cols)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}

// MarkPaid stamps the payment paid as of paidDate. Safe to call repeatedly.
func (r *PaymentRepository) MarkPaid(ctx context.Context, id, paidDate string) (*domain.Payment, error) {
	return r.Update(ctx, id, map[string]interface{}{
		"status":    domain.PaymentPaid,
		"paid_date": paidDate,
	})
}

func (r *PaymentRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&domain.Payment{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *PaymentRepository) Stats(ctx context.Context) (*PaymentStats, error) {
	today := time.Now().Format("2006-01-02")

	type row struct {
		Total    int64
		Paid     int64
		Pending  int64
		Overdue  int64
		Revenue  float64
		PendAmnt float64
	}
	var v row
	err := r.db.WithContext(ctx).Model(&domain.Payment{}).
		Select(`COUNT(*) AS total,
COALESCE(SUM(CASE WHEN status = 'paid' THEN 1 ELSE 0 END),0) AS paid,
COALESCE(SUM(CASE WHEN status = 'pending' THEN 1 ELSE 0 END),0) AS pending,
COALESCE(SUM(CASE WHEN status = 'pending' AND due_date < ? THEN 1 ELSE 0 END),0) AS overdue,
COALESCE(SUM(CASE WHEN status = 'paid' THEN amount ELSE 0 END),0) AS revenue,
COALESCE(SUM(CASE WHEN status = 'pending' THEN amount ELSE 0 END),0) AS pend_amnt`, today).
		Scan(&v).Error
	if err != nil {
		return nil, err
	}

	return &PaymentStats{
		TotalPayments:   v.Total,
		PaidPayments:    v.Paid,
		PendingPayments: v.Pending,
		OverduePayments: v.Overdue,
		TotalRevenue:    v.Revenue,
		PendingAmount:   v.PendAmnt,
	}, nil
}
