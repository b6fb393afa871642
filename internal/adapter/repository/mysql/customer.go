package mysql

import (
	"context"

	"gorm.io/gorm"

	custDomain "loanbook/internal/domain/customer"
)

type CustomerRepository struct{ db *gorm.DB }

func NewCustomerRepository(db *gorm.DB) *CustomerRepository { return &CustomerRepository{db: db} }

func (r *CustomerRepository) Create(ctx context.Context, c *custDomain.Customer) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CustomerRepository) GetByCustomerID(ctx context.Context, customerID string) (*custDomain.Customer, error) {
	var out custDomain.Customer
	res := r.db.WithContext(ctx).Where("customer_id = ?", customerID).First(&out)
	return &out, res.Error
}

func (r *CustomerRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).Model(&custDomain.Customer{}).Count(&n)
	return n, res.Error
}
