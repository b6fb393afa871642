package customer

import "context"

type Repository interface {
	Create(ctx context.Context, c *Customer) error
	GetByCustomerID(ctx context.Context, customerID string) (*Customer, error)
	Count(ctx context.Context) (int64, error)
}
