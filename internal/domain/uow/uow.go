package uow

import (
	"context"

	"loanbook/internal/domain/customer"
	"loanbook/internal/domain/loan"
	"loanbook/internal/domain/payment"
)

type Repos struct {
	Customers customer.Repository
	Loans     loan.Repository
	Payments  payment.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the loan first, then pass it in. At most one
	// caller per loan makes it into fn at a time.
	WithinLoanTx(ctx context.Context, loanID string, fn func(r Repos, l *loan.Loan) error) error
}
