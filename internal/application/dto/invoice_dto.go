package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// GenerateInvoiceRequest generates the billing document for a delivered
// sales order. DueDate defaults to 30 days out when empty.
type GenerateInvoiceRequest struct {
	SOID    string `json:"so_id" validate:"required"`
	DueDate string `json:"due_date"`
}

// InvoiceResponse is a billing document.
type InvoiceResponse struct {
	ID          string          `json:"id"`
	SOID        string          `json:"so_id"`
	CustomerID  string          `json:"customer_id"`
	InvoiceDate time.Time       `json:"invoice_date"`
	DueDate     time.Time       `json:"due_date"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	TotalGST    decimal.Decimal `json:"total_gst"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Status      string          `json:"status"`
	Notice      string          `json:"notice,omitempty"`
}

// InvoiceListResponse is a paginated invoice listing.
type InvoiceListResponse struct {
	Items []InvoiceResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
