package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SupplierRequest creates or updates a supplier directory entry.
type SupplierRequest struct {
	Name          string `json:"name" validate:"required,min=1,max=200"`
	ContactPerson string `json:"contact_person"`
	Phone         string `json:"phone"`
	Email         string `json:"email" validate:"omitempty,email"`
	Address       string `json:"address"`
	GSTIN         string `json:"gstin" validate:"omitempty,len=15"`
	PaymentTerms  string `json:"payment_terms"`
}

// SupplierResponse is a supplier directory entry.
type SupplierResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	ContactPerson string    `json:"contact_person"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	Address       string    `json:"address"`
	GSTIN         string    `json:"gstin"`
	PaymentTerms  string    `json:"payment_terms"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// SupplierListResponse is a paginated supplier listing.
type SupplierListResponse struct {
	Items []SupplierResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// CustomerRequest creates or updates a customer directory entry. CreditLimit
// is informational only.
type CustomerRequest struct {
	Name          string          `json:"name" validate:"required,min=1,max=200"`
	ContactPerson string          `json:"contact_person"`
	Phone         string          `json:"phone"`
	Email         string          `json:"email" validate:"omitempty,email"`
	Address       string          `json:"address"`
	GSTIN         string          `json:"gstin" validate:"omitempty,len=15"`
	CreditLimit   decimal.Decimal `json:"credit_limit"`
	PaymentTerms  string          `json:"payment_terms"`
}

// CustomerResponse is a customer directory entry.
type CustomerResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	ContactPerson string          `json:"contact_person"`
	Phone         string          `json:"phone"`
	Email         string          `json:"email"`
	Address       string          `json:"address"`
	GSTIN         string          `json:"gstin"`
	CreditLimit   decimal.Decimal `json:"credit_limit"`
	PaymentTerms  string          `json:"payment_terms"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// CustomerListResponse is a paginated customer listing.
type CustomerListResponse struct {
	Items []CustomerResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
