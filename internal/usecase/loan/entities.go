package loan

import "time"

type CreateLoanInput struct {
	CustomerID         string  `json:"customer_id"`
	LoanAmount         float64 `json:"loan_amount"`
	InterestRateYearly float64 `json:"interest_rate_yearly"`
	LoanPeriodYears    int     `json:"loan_period_years"`
}

type LoanCreatedDTO struct {
	LoanID             string  `json:"loan_id"`
	CustomerID         string  `json:"customer_id"`
	TotalAmountPayable float64 `json:"total_amount_payable"`
	MonthlyEMI         float64 `json:"monthly_emi"`
}

type TransactionDTO struct {
	TransactionID string    `json:"transaction_id"`
	Date          time.Time `json:"date"`
	Amount        float64   `json:"amount"`
	Type          string    `json:"type"`
}

type LedgerDTO struct {
	LoanID        string           `json:"loan_id"`
	CustomerID    string           `json:"customer_id"`
	Principal     float64          `json:"principal"`
	TotalAmount   float64          `json:"total_amount"`
	MonthlyEMI    float64          `json:"monthly_emi"`
	AmountPaid    float64          `json:"amount_paid"`
	BalanceAmount float64          `json:"balance_amount"`
	EMIsLeft      int              `json:"emis_left"`
	Status        string           `json:"status"`
	Transactions  []TransactionDTO `json:"transactions"`
}

type LoanOverviewDTO struct {
	LoanID        string  `json:"loan_id"`
	Principal     float64 `json:"principal"`
	TotalAmount   float64 `json:"total_amount"`
	TotalInterest float64 `json:"total_interest"`
	EMIAmount     float64 `json:"emi_amount"`
	AmountPaid    float64 `json:"amount_paid"`
	BalanceAmount float64 `json:"balance_amount"`
	EMIsLeft      int     `json:"emis_left"`
	Status        string  `json:"status"`
}

type OverviewDTO struct {
	CustomerID string            `json:"customer_id"`
	TotalLoans int               `json:"total_loans"`
	Loans      []LoanOverviewDTO `json:"loans"`
}
