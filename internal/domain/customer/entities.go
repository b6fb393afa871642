package customer

import (
	"errors"
	"time"
)

var (
	ErrNotFound    = errors.New("customer not found")
	ErrDuplicateID = errors.New("customer id already exists")
)

// Customer identifiers are assigned externally, not minted here, hence the
// wider column. A customer row is immutable after creation.
type Customer struct {
	ID         uint64    `gorm:"primaryKey;column:id" json:"-"`
	CustomerID string    `gorm:"size:64;uniqueIndex:ux_customers_customer_id" json:"customer_id"`
	Name       string    `gorm:"size:255" json:"name"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Customer) TableName() string { return "customers" }
