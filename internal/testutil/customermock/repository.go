package customermock

import (
	"context"

	domain "loanbook/internal/domain/customer"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies customer.Repository.
// Fill in the function fields a test needs; unfilled ones fall back to
// benign defaults.
type Repo struct {
	CreateFn          func(ctx context.Context, c *domain.Customer) error
	GetByCustomerIDFn func(ctx context.Context, customerID string) (*domain.Customer, error)
	CountFn           func(ctx context.Context) (int64, error)
}

func (m *Repo) Create(ctx context.Context, c *domain.Customer) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}

func (m *Repo) GetByCustomerID(ctx context.Context, customerID string) (*domain.Customer, error) {
	if m.GetByCustomerIDFn != nil {
		return m.GetByCustomerIDFn(ctx, customerID)
	}
	return nil, context.Canceled
}

func (m *Repo) Count(ctx context.Context) (int64, error) {
	if m.CountFn != nil {
		return m.CountFn(ctx)
	}
	return 0, nil
}
