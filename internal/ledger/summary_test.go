package ledger

import (
	"errors"
	"testing"

	"loanbook/internal/domain/loan"
	"loanbook/internal/domain/payment"
)

func makeLoan(total, emi string) *loan.Loan {
	return &loan.Loan{
		LoanID:      "11111111-1111-4111-8111-111111111111",
		CustomerID:  "CUST001",
		Principal:   dec("100000"),
		TotalAmount: dec(total),
		MonthlyEMI:  dec(emi),
		Status:      loan.StatusActive,
	}
}

func makePayments(amounts ...string) []*payment.Payment {
	out := make([]*payment.Payment, 0, len(amounts))
	for _, a := range amounts {
		out = append(out, &payment.Payment{Amount: dec(a), PaymentType: payment.TypeEMI})
	}
	return out
}

func TestSummarize_ActiveLoan(t *testing.T) {
	l := makeLoan("120000", "5000")
	sum, err := Summarize(l, makePayments("5000", "5000", "5000"))
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if !sum.AmountPaid.Equal(dec("15000")) {
		t.Errorf("AmountPaid = %s, want 15000", sum.AmountPaid)
	}
	if !sum.Balance.Equal(dec("105000")) {
		t.Errorf("Balance = %s, want 105000", sum.Balance)
	}
	if sum.EMIsLeft != 21 {
		t.Errorf("EMIsLeft = %d, want 21", sum.EMIsLeft)
	}
	if sum.Status != loan.StatusActive {
		t.Errorf("Status = %s, want ACTIVE", sum.Status)
	}
}

func TestSummarize_NoPayments(t *testing.T) {
	l := makeLoan("120000", "5000")
	sum, err := Summarize(l, nil)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if !sum.AmountPaid.IsZero() || !sum.Balance.Equal(dec("120000")) || sum.EMIsLeft != 24 {
		t.Fatalf("unexpected summary: %+v", sum)
	}
}

func TestSummarize_PaidOffExactlyAtZero(t *testing.T) {
	l := makeLoan("10000", "5000")
	sum, err := Summarize(l, makePayments("5000", "5000"))
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if !sum.Balance.IsZero() {
		t.Errorf("Balance = %s, want 0", sum.Balance)
	}
	if sum.EMIsLeft != 0 {
		t.Errorf("EMIsLeft = %d, want 0", sum.EMIsLeft)
	}
	if sum.Status != loan.StatusPaidOff {
		t.Errorf("Status = %s, want PAID_OFF", sum.Status)
	}
}

func TestSummarize_ClampsOverpaymentAtZero(t *testing.T) {
	l := makeLoan("10000", "5000")
	sum, err := Summarize(l, makePayments("10000", "1"))
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if sum.Balance.Sign() != 0 {
		t.Errorf("Balance = %s, want clamped 0", sum.Balance)
	}
	if sum.Status != loan.StatusPaidOff {
		t.Errorf("Status = %s, want PAID_OFF", sum.Status)
	}
}

func TestSummarize_Deterministic(t *testing.T) {
	l := makeLoan("57500", "2395.83")
	pays := makePayments("2395.83", "1000")
	a, err := Summarize(l, pays)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	b, err := Summarize(l, pays)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if !a.AmountPaid.Equal(b.AmountPaid) || !a.Balance.Equal(b.Balance) ||
		a.EMIsLeft != b.EMIsLeft || a.Status != b.Status {
		t.Fatalf("summaries differ: %+v vs %+v", a, b)
	}
}

func TestCheckPayment_Accepts(t *testing.T) {
	l := makeLoan("120000", "5000")
	existing := makePayments("5000", "5000")
	if err := CheckPayment(l, existing, dec("5000"), payment.TypeEMI); err != nil {
		t.Fatalf("CheckPayment: %v", err)
	}
	if err := CheckPayment(l, existing, dec("110000"), payment.TypeLumpSum); err != nil {
		t.Fatalf("payment up to the exact balance must pass: %v", err)
	}
}

func TestCheckPayment_Rejections(t *testing.T) {
	l := makeLoan("120000", "5000")
	existing := makePayments("115000")

	if err := CheckPayment(l, existing, dec("0"), payment.TypeEMI); !errors.Is(err, payment.ErrInvalidAmount) {
		t.Errorf("zero amount: err = %v, want ErrInvalidAmount", err)
	}
	if err := CheckPayment(l, existing, dec("-5"), payment.TypeEMI); !errors.Is(err, payment.ErrInvalidAmount) {
		t.Errorf("negative amount: err = %v, want ErrInvalidAmount", err)
	}
	if err := CheckPayment(l, existing, dec("100"), payment.Type("WIRE")); !errors.Is(err, payment.ErrInvalidType) {
		t.Errorf("unknown type: err = %v, want ErrInvalidType", err)
	}
	// 115000 already paid; 10000 more would total 125000 > 120000
	if err := CheckPayment(l, existing, dec("10000"), payment.TypeLumpSum); !errors.Is(err, payment.ErrExceedsBalance) {
		t.Errorf("overpayment: err = %v, want ErrExceedsBalance", err)
	}
	// paying the remaining 5000 exactly is fine
	if err := CheckPayment(l, existing, dec("5000"), payment.TypeEMI); err != nil {
		t.Errorf("exact payoff: err = %v, want nil", err)
	}
}

// After any sequence of accepted payments the paid sum never exceeds the
// total, and status flips to PAID_OFF the moment they are equal.
func TestPaymentSequence_InvariantHolds(t *testing.T) {
	l := makeLoan("120000", "5000")
	var accepted []*payment.Payment

	amounts := []string{"5000", "5000", "60000", "49999", "2", "1", "1"}
	for _, a := range amounts {
		amt := dec(a)
		if err := CheckPayment(l, accepted, amt, payment.TypeLumpSum); err != nil {
			continue // rejected payments leave no trace
		}
		accepted = append(accepted, &payment.Payment{Amount: amt, PaymentType: payment.TypeLumpSum})

		sum, err := Summarize(l, accepted)
		if err != nil {
			t.Fatalf("Summarize: %v", err)
		}
		if sum.AmountPaid.GreaterThan(l.TotalAmount) {
			t.Fatalf("paid %s exceeds total %s", sum.AmountPaid, l.TotalAmount)
		}
		wantStatus := loan.StatusActive
		if sum.AmountPaid.Equal(l.TotalAmount) {
			wantStatus = loan.StatusPaidOff
		}
		if sum.Status != wantStatus {
			t.Fatalf("paid=%s total=%s: status %s, want %s", sum.AmountPaid, l.TotalAmount, sum.Status, wantStatus)
		}
	}

	// 5000+5000+60000+49999+2 rejected(would exceed)... final exact payoff:
	final, err := Summarize(l, accepted)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if !final.AmountPaid.Equal(dec("120000")) || final.Status != loan.StatusPaidOff {
		t.Fatalf("unexpected terminal state: %+v", final)
	}
}

func TestSummarize_DegenerateEMISurfacesError(t *testing.T) {
	l := makeLoan("120000", "0")
	if _, err := Summarize(l, nil); !errors.Is(err, ErrInvalidInstallmentAmount) {
		t.Fatalf("err = %v, want ErrInvalidInstallmentAmount", err)
	}
}
