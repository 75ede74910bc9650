package entity

import "time"

// Supplier is a purchasing directory entry. Deletable only while no purchase
// order references it.
type Supplier struct {
	ID            string
	Name          string
	ContactPerson string
	Phone         string
	Email         string
	Address       string
	GSTIN         string
	PaymentTerms  string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
