package ledger

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidLoanParameters    = errors.New("invalid loan parameters")
	ErrInvalidInstallmentAmount = errors.New("invalid installment amount")
)

var hundred = decimal.NewFromInt(100)

// Terms are the amounts derived from a loan's immutable parameters.
type Terms struct {
	TotalInterest decimal.Decimal
	TotalPayable  decimal.Decimal
	MonthlyEMI    decimal.Decimal
}

// ComputeLoanTerms derives the simple-interest terms of a loan:
//
//	interest = principal * years * (rate / 100)
//	total    = principal + interest
//	emi      = total / (years * 12), rounded half-up to cents
//
// Interest is linear on the principal, never compounded. Returns
// ErrInvalidLoanParameters for a non-positive principal or period, or a
// negative rate.
func ComputeLoanTerms(principal, yearlyRatePercent decimal.Decimal, periodYears int) (Terms, error) {
	if principal.Sign() <= 0 || periodYears <= 0 || yearlyRatePercent.Sign() < 0 {
		return Terms{}, ErrInvalidLoanParameters
	}
	interest := principal.
		Mul(decimal.NewFromInt(int64(periodYears))).
		Mul(yearlyRatePercent.Div(hundred))
	total := principal.Add(interest)
	months := decimal.NewFromInt(int64(periodYears) * 12)
	return Terms{
		TotalInterest: interest,
		TotalPayable:  total,
		MonthlyEMI:    total.Div(months).Round(2),
	}, nil
}

// RemainingInstallments is the minimum number of full installments still
// needed to clear balance. A settled or overpaid loan needs zero; a partial
// final installment still counts as one more payment.
func RemainingInstallments(balance, monthlyEMI decimal.Decimal) (int, error) {
	if balance.Sign() <= 0 {
		return 0, nil
	}
	if monthlyEMI.Sign() <= 0 {
		return 0, ErrInvalidInstallmentAmount
	}
	return int(balance.Div(monthlyEMI).Ceil().IntPart()), nil
}
