package system

import (
	"context"

	"loanbook/internal/domain/customer"
	"loanbook/internal/domain/loan"
	"loanbook/internal/domain/payment"
)

// Usecase backs the /status endpoint: record counts double as a cheap
// database connectivity probe.
type Usecase struct {
	customers customer.Repository
	loans     loan.Repository
	payments  payment.Repository
}

func NewUsecase(customers customer.Repository, loans loan.Repository, payments payment.Repository) *Usecase {
	return &Usecase{customers: customers, loans: loans, payments: payments}
}

type StatusDTO struct {
	Customers int64 `json:"customers"`
	Loans     int64 `json:"loans"`
	Payments  int64 `json:"payments"`
}

func (u *Usecase) Status(ctx context.Context) (*StatusDTO, error) {
	customers, err := u.customers.Count(ctx)
	if err != nil {
		return nil, err
	}
	loans, err := u.loans.Count(ctx)
	if err != nil {
		return nil, err
	}
	payments, err := u.payments.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &StatusDTO{Customers: customers, Loans: loans, Payments: payments}, nil
}
