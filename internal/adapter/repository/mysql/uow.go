package mysql

import (
	"context"

	"gorm.io/gorm"

	"loanbook/internal/domain/loan"
	"loanbook/internal/domain/uow"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func (u *GormUoW) repos(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Customers: &CustomerRepository{db: tx},
		Loans:     &LoanRepository{db: tx},
		Payments:  &PaymentRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(u.repos(tx))
	})
}

func (u *GormUoW) WithinLoanTx(ctx context.Context, loanID string, fn func(r uow.Repos, l *loan.Loan) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := u.repos(tx)
		// lock the loan row up-front to prevent races
		l, err := r.Loans.GetByLoanIDForUpdate(ctx, loanID)
		if err != nil {
			return err
		}
		return fn(r, l)
	})
}
