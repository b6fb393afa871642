package payment

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	loandomain "loanbook/internal/domain/loan"
	domain "loanbook/internal/domain/payment"
	"loanbook/internal/domain/uow"
	"loanbook/internal/ledger"
	"loanbook/pkg/id"
)

type Usecase struct{ uow uow.UnitOfWork }

// NewUsecase: all writes go through a UoW so the balance check, the insert
// and the status flip share one locked transaction.
func NewUsecase(tx uow.UnitOfWork) *Usecase { return &Usecase{uow: tx} }

type RecordPaymentInput struct {
	LoanID      string
	Amount      float64
	PaymentType string
}

type PaymentDTO struct {
	PaymentID        string  `json:"payment_id"`
	LoanID           string  `json:"loan_id"`
	Message          string  `json:"message"`
	RemainingBalance float64 `json:"remaining_balance"`
	EMIsLeft         int     `json:"emis_left"`
	Status           string  `json:"status"`
}

// Record applies a payment to a loan. The loan row is locked for the whole
// evaluation, so two concurrent submissions cannot both pass the balance
// check and jointly overpay.
func (u *Usecase) Record(ctx context.Context, in RecordPaymentInput) (*PaymentDTO, error) {
	amount := decimal.NewFromFloat(in.Amount)
	var dto *PaymentDTO

	err := u.uow.WithinLoanTx(ctx, in.LoanID, func(r uow.Repos, l *loandomain.Loan) error {
		existing, err := r.Payments.ListByLoanID(ctx, l.LoanID)
		if err != nil {
			return err
		}
		if err := ledger.CheckPayment(l, existing, amount, domain.Type(in.PaymentType)); err != nil {
			return err
		}

		p := &domain.Payment{
			PaymentID:   id.New(),
			LoanID:      l.LoanID,
			Amount:      amount,
			PaymentType: domain.Type(in.PaymentType),
			PaymentDate: time.Now().UTC(),
		}
		if err := r.Payments.Create(ctx, p); err != nil {
			return err
		}

		sum, err := ledger.Summarize(l, append(existing, p))
		if err != nil {
			return err
		}
		// Flip only on the transition; a loan already paid off stays put.
		if sum.Status == loandomain.StatusPaidOff && l.Status != loandomain.StatusPaidOff {
			l.Status = loandomain.StatusPaidOff
			l.StatusUpdatedAt = time.Now().UTC()
			if err := r.Loans.Save(ctx, l); err != nil {
				return err
			}
		}

		dto = &PaymentDTO{
			PaymentID:        p.PaymentID,
			LoanID:           l.LoanID,
			Message:          "Payment recorded successfully.",
			RemainingBalance: f64(sum.Balance),
			EMIsLeft:         sum.EMIsLeft,
			Status:           string(sum.Status),
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loandomain.ErrNotFound
		}
		return nil, err
	}
	return dto, nil
}

func f64(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}
