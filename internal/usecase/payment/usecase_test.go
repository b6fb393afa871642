package payment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	loandomain "loanbook/internal/domain/loan"
	domain "loanbook/internal/domain/payment"
	"loanbook/internal/domain/uow"
	"loanbook/internal/testutil/loanmock"
	"loanbook/internal/testutil/paymentmock"
	"loanbook/internal/testutil/uowmock"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

const loanID = "11111111-1111-4111-8111-111111111111"

// harness wires a uow mock around in-memory state so Record runs against a
// realistic locked-loan flow.
type harness struct {
	loan     *loandomain.Loan
	payments []*domain.Payment
	saves    int
}

func newHarness(total, emi string, paid ...string) *harness {
	h := &harness{
		loan: &loandomain.Loan{
			LoanID:      loanID,
			CustomerID:  "CUST001",
			Principal:   dec("100000"),
			TotalAmount: dec(total),
			MonthlyEMI:  dec(emi),
			Status:      loandomain.StatusActive,
		},
	}
	for _, a := range paid {
		h.payments = append(h.payments, &domain.Payment{LoanID: loanID, Amount: dec(a), PaymentType: domain.TypeEMI})
	}
	return h
}

func (h *harness) uow() *uowmock.UoW {
	repos := uow.Repos{
		Loans: &loanmock.Repo{
			SaveFn: func(ctx context.Context, l *loandomain.Loan) error {
				h.saves++
				h.loan = l
				return nil
			},
		},
		Payments: &paymentmock.Repo{
			CreateFn: func(ctx context.Context, p *domain.Payment) error {
				h.payments = append(h.payments, p)
				return nil
			},
			ListByLoanIDFn: func(ctx context.Context, id string) ([]*domain.Payment, error) {
				return h.payments, nil
			},
		},
	}
	return &uowmock.UoW{
		WithinLoanTxFn: func(ctx context.Context, id string, fn func(r uow.Repos, l *loandomain.Loan) error) error {
			if id != loanID {
				return gorm.ErrRecordNotFound
			}
			return fn(repos, h.loan)
		},
	}
}

func TestRecord_Success(t *testing.T) {
	h := newHarness("120000", "5000", "5000", "5000")
	uc := NewUsecase(h.uow())

	dto, err := uc.Record(context.Background(), RecordPaymentInput{
		LoanID: loanID, Amount: 5000, PaymentType: "EMI",
	})
	if err != nil {
		t.Fatalf("Record err: %v", err)
	}
	if dto.RemainingBalance != 105000 {
		t.Errorf("RemainingBalance = %v, want 105000", dto.RemainingBalance)
	}
	if dto.EMIsLeft != 21 {
		t.Errorf("EMIsLeft = %d, want 21", dto.EMIsLeft)
	}
	if dto.Status != string(loandomain.StatusActive) {
		t.Errorf("Status = %s, want ACTIVE", dto.Status)
	}
	if len(dto.PaymentID) != 36 {
		t.Errorf("PaymentID length = %d, want 36 (uuid)", len(dto.PaymentID))
	}
	if len(h.payments) != 3 {
		t.Errorf("stored payments = %d, want 3", len(h.payments))
	}
	if h.saves != 0 {
		t.Errorf("loan saved %d times, want 0 (no status change)", h.saves)
	}
	last := h.payments[len(h.payments)-1]
	if last.PaymentDate.IsZero() || time.Since(last.PaymentDate) > time.Minute {
		t.Errorf("payment date not stamped: %v", last.PaymentDate)
	}
}

func TestRecord_ExceedsBalance(t *testing.T) {
	// 115000 paid of 120000; 10000 more would overpay by 5000.
	h := newHarness("120000", "5000", "115000")
	uc := NewUsecase(h.uow())

	_, err := uc.Record(context.Background(), RecordPaymentInput{
		LoanID: loanID, Amount: 10000, PaymentType: "LUMP_SUM",
	})
	if !errors.Is(err, domain.ErrExceedsBalance) {
		t.Fatalf("err = %v, want ErrExceedsBalance", err)
	}
	if len(h.payments) != 1 {
		t.Fatalf("rejected payment must not be stored, have %d", len(h.payments))
	}
}

func TestRecord_InvalidAmountAndType(t *testing.T) {
	h := newHarness("120000", "5000")
	uc := NewUsecase(h.uow())

	if _, err := uc.Record(context.Background(), RecordPaymentInput{LoanID: loanID, Amount: 0, PaymentType: "EMI"}); !errors.Is(err, domain.ErrInvalidAmount) {
		t.Errorf("zero amount: err = %v, want ErrInvalidAmount", err)
	}
	if _, err := uc.Record(context.Background(), RecordPaymentInput{LoanID: loanID, Amount: -10, PaymentType: "EMI"}); !errors.Is(err, domain.ErrInvalidAmount) {
		t.Errorf("negative amount: err = %v, want ErrInvalidAmount", err)
	}
	if _, err := uc.Record(context.Background(), RecordPaymentInput{LoanID: loanID, Amount: 100, PaymentType: "CASH"}); !errors.Is(err, domain.ErrInvalidType) {
		t.Errorf("bad type: err = %v, want ErrInvalidType", err)
	}
	if len(h.payments) != 0 {
		t.Fatalf("no payment may be stored, have %d", len(h.payments))
	}
}

func TestRecord_FinalPaymentPaysOff(t *testing.T) {
	// balance exactly 5000 with EMI 5000: one exact payment settles the loan
	h := newHarness("120000", "5000", "115000")
	uc := NewUsecase(h.uow())

	dto, err := uc.Record(context.Background(), RecordPaymentInput{
		LoanID: loanID, Amount: 5000, PaymentType: "EMI",
	})
	if err != nil {
		t.Fatalf("Record err: %v", err)
	}
	if dto.RemainingBalance != 0 {
		t.Errorf("RemainingBalance = %v, want 0", dto.RemainingBalance)
	}
	if dto.EMIsLeft != 0 {
		t.Errorf("EMIsLeft = %d, want 0", dto.EMIsLeft)
	}
	if dto.Status != string(loandomain.StatusPaidOff) {
		t.Errorf("Status = %s, want PAID_OFF", dto.Status)
	}
	if h.saves != 1 {
		t.Errorf("loan saved %d times, want exactly 1", h.saves)
	}
	if h.loan.Status != loandomain.StatusPaidOff {
		t.Errorf("persisted status = %s, want PAID_OFF", h.loan.Status)
	}
}

func TestRecord_PaidOffLoanRejectsMore(t *testing.T) {
	h := newHarness("120000", "5000", "120000")
	h.loan.Status = loandomain.StatusPaidOff
	uc := NewUsecase(h.uow())

	_, err := uc.Record(context.Background(), RecordPaymentInput{
		LoanID: loanID, Amount: 1, PaymentType: "EMI",
	})
	if !errors.Is(err, domain.ErrExceedsBalance) {
		t.Fatalf("err = %v, want ErrExceedsBalance", err)
	}
	if h.saves != 0 {
		t.Errorf("terminal status must not be rewritten, saves = %d", h.saves)
	}
}

func TestRecord_LoanNotFound(t *testing.T) {
	h := newHarness("120000", "5000")
	uc := NewUsecase(h.uow())

	_, err := uc.Record(context.Background(), RecordPaymentInput{
		LoanID: "missing", Amount: 5000, PaymentType: "EMI",
	})
	if !errors.Is(err, loandomain.ErrNotFound) {
		t.Fatalf("err = %v, want loan.ErrNotFound", err)
	}
}
