package loan

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	custdomain "loanbook/internal/domain/customer"
	domain "loanbook/internal/domain/loan"
	paydomain "loanbook/internal/domain/payment"
	"loanbook/internal/ledger"
	"loanbook/pkg/id"
)

type Usecase struct {
	loans     domain.Repository
	customers custdomain.Repository
	payments  paydomain.Repository
}

func NewUsecase(loans domain.Repository, customers custdomain.Repository, payments paydomain.Repository) *Usecase {
	return &Usecase{loans: loans, customers: customers, payments: payments}
}

func (u *Usecase) Create(ctx context.Context, in CreateLoanInput) (*LoanCreatedDTO, error) {
	terms, err := ledger.ComputeLoanTerms(
		decimal.NewFromFloat(in.LoanAmount),
		decimal.NewFromFloat(in.InterestRateYearly),
		in.LoanPeriodYears,
	)
	if err != nil {
		return nil, err
	}

	if _, err := u.customers.GetByCustomerID(ctx, in.CustomerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, custdomain.ErrNotFound
		}
		return nil, err
	}

	l := &domain.Loan{
		LoanID:          id.New(),
		CustomerID:      in.CustomerID,
		Principal:       decimal.NewFromFloat(in.LoanAmount),
		InterestRate:    decimal.NewFromFloat(in.InterestRateYearly),
		PeriodYears:     in.LoanPeriodYears,
		TotalAmount:     terms.TotalPayable,
		MonthlyEMI:      terms.MonthlyEMI,
		Status:          domain.StatusActive,
		StatusUpdatedAt: time.Now().UTC(),
	}
	if err := u.loans.Create(ctx, l); err != nil {
		return nil, err
	}

	return &LoanCreatedDTO{
		LoanID:             l.LoanID,
		CustomerID:         l.CustomerID,
		TotalAmountPayable: f64(terms.TotalPayable),
		MonthlyEMI:         f64(terms.MonthlyEMI),
	}, nil
}

// Ledger returns a loan's full transaction history with its derived state,
// payments newest first.
func (u *Usecase) Ledger(ctx context.Context, loanID string) (*LedgerDTO, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	pays, err := u.payments.ListByLoanID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	sum, err := ledger.Summarize(l, pays)
	if err != nil {
		return nil, err
	}

	txs := make([]TransactionDTO, 0, len(pays))
	for _, p := range pays {
		txs = append(txs, TransactionDTO{
			TransactionID: p.PaymentID,
			Date:          p.PaymentDate,
			Amount:        f64(p.Amount),
			Type:          string(p.PaymentType),
		})
	}

	return &LedgerDTO{
		LoanID:        l.LoanID,
		CustomerID:    l.CustomerID,
		Principal:     f64(l.Principal),
		TotalAmount:   f64(l.TotalAmount),
		MonthlyEMI:    f64(l.MonthlyEMI),
		AmountPaid:    f64(sum.AmountPaid),
		BalanceAmount: f64(sum.Balance),
		EMIsLeft:      sum.EMIsLeft,
		Status:        string(sum.Status),
		Transactions:  txs,
	}, nil
}

// Overview summarizes every loan a customer owns. A customer without loans
// gets an empty list; only an unknown customer is an error.
func (u *Usecase) Overview(ctx context.Context, customerID string) (*OverviewDTO, error) {
	if _, err := u.customers.GetByCustomerID(ctx, customerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, custdomain.ErrNotFound
		}
		return nil, err
	}
	loans, err := u.loans.ListByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	out := make([]LoanOverviewDTO, 0, len(loans))
	for _, l := range loans {
		pays, err := u.payments.ListByLoanID(ctx, l.LoanID)
		if err != nil {
			return nil, err
		}
		sum, err := ledger.Summarize(l, pays)
		if err != nil {
			return nil, err
		}
		out = append(out, LoanOverviewDTO{
			LoanID:        l.LoanID,
			Principal:     f64(l.Principal),
			TotalAmount:   f64(l.TotalAmount),
			TotalInterest: f64(l.TotalAmount.Sub(l.Principal)),
			EMIAmount:     f64(l.MonthlyEMI),
			AmountPaid:    f64(sum.AmountPaid),
			BalanceAmount: f64(sum.Balance),
			EMIsLeft:      sum.EMIsLeft,
			Status:        string(sum.Status),
		})
	}

	return &OverviewDTO{CustomerID: customerID, TotalLoans: len(out), Loans: out}, nil
}

func f64(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}
