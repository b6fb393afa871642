package payment

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount  = errors.New("payment amount must be positive")
	ErrInvalidType    = errors.New("invalid payment type")
	ErrExceedsBalance = errors.New("payment amount exceeds remaining balance")
)

type Type string

const (
	TypeEMI     Type = "EMI"
	TypeLumpSum Type = "LUMP_SUM"
)

// Payment rows are append-only: never updated, never deleted.
type Payment struct {
	ID          uint64          `gorm:"primaryKey;column:id" json:"-"`
	PaymentID   string          `gorm:"size:36;uniqueIndex:ux_payments_payment_id" json:"payment_id"`
	LoanID      string          `gorm:"size:36;index:idx_payments_loan" json:"loan_id"`
	Amount      decimal.Decimal `gorm:"type:decimal(18,2)" json:"amount"`
	PaymentType Type            `gorm:"type:enum('EMI','LUMP_SUM');column:payment_type" json:"payment_type"`
	PaymentDate time.Time       `gorm:"column:payment_date;autoCreateTime" json:"payment_date"`
}

func (Payment) TableName() string { return "payments" }
