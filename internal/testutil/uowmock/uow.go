package uowmock

import (
	"context"
	"errors"

	"loanbook/internal/domain/loan"
	"loanbook/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork. Fill in the
// function fields you need in a test; unfilled ones return errUnimplemented.
type UoW struct {
	WithinTxFn     func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinLoanTxFn func(ctx context.Context, loanID string, fn func(r uow.Repos, l *loan.Loan) error) error
}

func New() *UoW { return &UoW{} }

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}

func (m *UoW) WithinLoanTx(ctx context.Context, loanID string, fn func(r uow.Repos, l *loan.Loan) error) error {
	if m.WithinLoanTxFn != nil {
		return m.WithinLoanTxFn(ctx, loanID, fn)
	}
	return errUnimplemented
}
