package loanmock

import (
	"context"

	domain "loanbook/internal/domain/loan"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies loan.Repository.
type Repo struct {
	CreateFn               func(ctx context.Context, l *domain.Loan) error
	GetByLoanIDFn          func(ctx context.Context, loanID string) (*domain.Loan, error)
	GetByLoanIDForUpdateFn func(ctx context.Context, loanID string) (*domain.Loan, error)
	ListByCustomerIDFn     func(ctx context.Context, customerID string) ([]*domain.Loan, error)
	SaveFn                 func(ctx context.Context, l *domain.Loan) error
	CountFn                func(ctx context.Context) (int64, error)
}

func (m *Repo) Create(ctx context.Context, l *domain.Loan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByLoanID(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetByLoanIDFn != nil {
		return m.GetByLoanIDFn(ctx, loanID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByLoanIDForUpdate(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetByLoanIDForUpdateFn != nil {
		return m.GetByLoanIDForUpdateFn(ctx, loanID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByCustomerID(ctx context.Context, customerID string) ([]*domain.Loan, error) {
	if m.ListByCustomerIDFn != nil {
		return m.ListByCustomerIDFn(ctx, customerID)
	}
	return nil, nil
}

func (m *Repo) Save(ctx context.Context, l *domain.Loan) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}

func (m *Repo) Count(ctx context.Context) (int64, error) {
	if m.CountFn != nil {
		return m.CountFn(ctx)
	}
	return 0, nil
}
