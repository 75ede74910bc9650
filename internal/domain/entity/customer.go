package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer is a sales directory entry. CreditLimit is informational; it is
// not enforced against order totals. Deletable only while no sales order or
// invoice references it.
type Customer struct {
	ID            string
	Name          string
	ContactPerson string
	Phone         string
	Email         string
	Address       string
	GSTIN         string
	CreditLimit   decimal.Decimal
	PaymentTerms  string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
