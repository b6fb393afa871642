package mysql

import (
	"context"

	"gorm.io/gorm"

	payDomain "loanbook/internal/domain/payment"
)

type PaymentRepository struct{ db *gorm.DB }

func NewPaymentRepository(db *gorm.DB) *PaymentRepository { return &PaymentRepository{db: db} }

func (r *PaymentRepository) Create(ctx context.Context, p *payDomain.Payment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PaymentRepository) ListByLoanID(ctx context.Context, loanID string) ([]*payDomain.Payment, error) {
	var out []*payDomain.Payment
	res := r.db.WithContext(ctx).
		Where("loan_id = ?", loanID).
		Order("payment_date DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *PaymentRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).Model(&payDomain.Payment{}).Count(&n)
	return n, res.Error
}
