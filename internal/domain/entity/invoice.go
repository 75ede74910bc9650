package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice statuses. One-way: Unpaid -> Paid.
const (
	InvoiceStatusUnpaid = "Unpaid"
	InvoiceStatusPaid   = "Paid"
)

// Invoice is the billing document generated from a fully delivered sales
// order. Totals are copied from the order at generation time; one invoice
// per order, enforced by uniqueness on SOID.
type Invoice struct {
	ID          string
	SOID        string
	CustomerID  string
	InvoiceDate time.Time
	DueDate     time.Time
	Subtotal    decimal.Decimal
	TotalGST    decimal.Decimal
	TotalAmount decimal.Decimal
	Status      string
	CreatedAt   time.Time
}
