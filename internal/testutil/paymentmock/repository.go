package paymentmock

import (
	"context"

	domain "loanbook/internal/domain/payment"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies payment.Repository.
type Repo struct {
	CreateFn       func(ctx context.Context, p *domain.Payment) error
	ListByLoanIDFn func(ctx context.Context, loanID string) ([]*domain.Payment, error)
	CountFn        func(ctx context.Context) (int64, error)
}

func (m *Repo) Create(ctx context.Context, p *domain.Payment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}

func (m *Repo) ListByLoanID(ctx context.Context, loanID string) ([]*domain.Payment, error) {
	if m.ListByLoanIDFn != nil {
		return m.ListByLoanIDFn(ctx, loanID)
	}
	return nil, nil
}

func (m *Repo) Count(ctx context.Context) (int64, error) {
	if m.CountFn != nil {
		return m.CountFn(ctx)
	}
	return 0, nil
}
