package loan

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("loan not found")

type Status string

const (
	StatusActive  Status = "ACTIVE"
	StatusPaidOff Status = "PAID_OFF"
)

// Loan terms (principal, rate, period, total, EMI) are fixed at creation;
// only Status ever changes, and only ACTIVE → PAID_OFF.
type Loan struct {
	ID              uint64          `gorm:"primaryKey;column:id" json:"-"`
	LoanID          string          `gorm:"size:36;uniqueIndex:ux_loans_loan_id" json:"loan_id"`
	CustomerID      string          `gorm:"size:64;index:idx_loans_customer" json:"customer_id"`
	Principal       decimal.Decimal `gorm:"type:decimal(18,2);column:principal_amount" json:"principal_amount"`
	InterestRate    decimal.Decimal `gorm:"type:decimal(6,2);column:interest_rate" json:"interest_rate"`
	PeriodYears     int             `gorm:"column:loan_period_years" json:"loan_period_years"`
	TotalAmount     decimal.Decimal `gorm:"type:decimal(18,2);column:total_amount" json:"total_amount"`
	MonthlyEMI      decimal.Decimal `gorm:"type:decimal(18,2);column:monthly_emi" json:"monthly_emi"`
	Status          Status          `gorm:"type:enum('ACTIVE','PAID_OFF');default:'ACTIVE'" json:"status"`
	StatusUpdatedAt time.Time       `gorm:"autoCreateTime" json:"status_updated_at"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Loan) TableName() string { return "loans" }
