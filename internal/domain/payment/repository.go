package payment

import "context"

type Repository interface {
	Create(ctx context.Context, p *Payment) error
	// ListByLoanID returns a loan's payments newest first.
	ListByLoanID(ctx context.Context, loanID string) ([]*Payment, error)
	Count(ctx context.Context) (int64, error)
}
