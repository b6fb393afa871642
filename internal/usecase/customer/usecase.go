package customer

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "loanbook/internal/domain/customer"
)

type Usecase struct{ repo domain.Repository }

func NewUsecase(r domain.Repository) *Usecase { return &Usecase{repo: r} }

type CreateCustomerInput struct {
	CustomerID string `json:"customer_id"`
	Name       string `json:"name"`
}

type CustomerDTO struct {
	CustomerID string    `json:"customer_id"`
	Name       string    `json:"name"`
	CreatedAt  time.Time `json:"created_at"`
}

func (u *Usecase) Create(ctx context.Context, in CreateCustomerInput) (*CustomerDTO, error) {
	if in.CustomerID == "" || in.Name == "" {
		return nil, errors.New("invalid input")
	}

	// Customer ids come from the outside, so duplicates are a caller error.
	_, err := u.repo.GetByCustomerID(ctx, in.CustomerID)
	switch {
	case err == nil:
		return nil, domain.ErrDuplicateID
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	c := &domain.Customer{CustomerID: in.CustomerID, Name: in.Name}
	if err := u.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return &CustomerDTO{CustomerID: c.CustomerID, Name: c.Name, CreatedAt: c.CreatedAt}, nil
}

func (u *Usecase) Get(ctx context.Context, customerID string) (*CustomerDTO, error) {
	c, err := u.repo.GetByCustomerID(ctx, customerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &CustomerDTO{CustomerID: c.CustomerID, Name: c.Name, CreatedAt: c.CreatedAt}, nil
}
