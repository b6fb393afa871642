package loan

import "context"

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	GetByLoanID(ctx context.Context, loanID string) (*Loan, error)
	// GetByLoanIDForUpdate locks the loan row until the surrounding
	// transaction ends. Only meaningful inside a UnitOfWork transaction.
	GetByLoanIDForUpdate(ctx context.Context, loanID string) (*Loan, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]*Loan, error)
	Save(ctx context.Context, l *Loan) error
	Count(ctx context.Context) (int64, error)
}
