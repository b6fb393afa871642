package mysql

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	loanDomain "loanbook/internal/domain/loan"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

// Tx runs fn in a db transaction, passing a repo bound to the tx
func (r *LoanRepository) Tx(ctx context.Context, fn func(repo loanDomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&LoanRepository{db: tx})
	})
}

func (r *LoanRepository) Create(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LoanRepository) Save(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *LoanRepository) GetByLoanID(ctx context.Context, loanID string) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).Where("loan_id = ?", loanID).First(&out)
	return &out, res.Error
}

func (r *LoanRepository) GetByLoanIDForUpdate(ctx context.Context, loanID string) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	q := r.db.WithContext(ctx)
	// sqlite has no FOR UPDATE; its single-writer model serializes anyway
	if r.db.Dialector.Name() == "mysql" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	res := q.Where("loan_id = ?", loanID).First(&out)
	return &out, res.Error
}

func (r *LoanRepository) ListByCustomerID(ctx context.Context, customerID string) ([]*loanDomain.Loan, error) {
	var out []*loanDomain.Loan
	res := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at ASC, id ASC").
		Find(&out)
	return out, res.Error
}

func (r *LoanRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).Model(&loanDomain.Loan{}).Count(&n)
	return n, res.Error
}
