package ledger

import (
	"github.com/shopspring/decimal"

	"loanbook/internal/domain/loan"
	"loanbook/internal/domain/payment"
)

// Summary is a loan's financial state derived from its immutable terms plus
// its payment history.
type Summary struct {
	AmountPaid decimal.Decimal
	Balance    decimal.Decimal
	EMIsLeft   int
	Status     loan.Status
}

// AmountPaid sums a loan's payment history. Order does not matter.
func AmountPaid(payments []*payment.Payment) decimal.Decimal {
	total := decimal.Zero
	for _, p := range payments {
		total = total.Add(p.Amount)
	}
	return total
}

// Summarize is pure: identical inputs always yield the identical summary.
// The balance is clamped at zero so an overpaid loan (which CheckPayment
// prevents upstream) never reports a negative balance. Status is PAID_OFF
// exactly when the balance is zero.
func Summarize(l *loan.Loan, payments []*payment.Payment) (Summary, error) {
	paid := AmountPaid(payments)
	balance := l.TotalAmount.Sub(paid)
	if balance.Sign() < 0 {
		balance = decimal.Zero
	}
	left, err := RemainingInstallments(balance, l.MonthlyEMI)
	if err != nil {
		return Summary{}, err
	}
	status := loan.StatusActive
	if balance.IsZero() {
		status = loan.StatusPaidOff
	}
	return Summary{AmountPaid: paid, Balance: balance, EMIsLeft: left, Status: status}, nil
}

// CheckPayment is the single authoritative gate for accepting a payment
// against a loan. Callers must not re-implement any of these checks.
func CheckPayment(l *loan.Loan, existing []*payment.Payment, amount decimal.Decimal, t payment.Type) error {
	if amount.Sign() <= 0 {
		return payment.ErrInvalidAmount
	}
	if t != payment.TypeEMI && t != payment.TypeLumpSum {
		return payment.ErrInvalidType
	}
	balance := l.TotalAmount.Sub(AmountPaid(existing))
	if amount.GreaterThan(balance) {
		return payment.ErrExceedsBalance
	}
	return nil
}
