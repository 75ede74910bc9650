package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderLineRequest is one order line as submitted: item and quantity only.
// Rate and GST are snapshotted from the catalog server-side.
type OrderLineRequest struct {
	ItemID   string `json:"item_id" validate:"required"`
	Quantity int64  `json:"quantity" validate:"required,min=1"`
}

// CreatePORequest creates a purchase order with its lines.
type CreatePORequest struct {
	SupplierID       string             `json:"supplier_id" validate:"required"`
	ExpectedDelivery string             `json:"expected_delivery" validate:"required"`
	Lines            []OrderLineRequest `json:"lines" validate:"required,min=1,dive"`
}

// OrderLineResponse is one snapshotted order line.
type OrderLineResponse struct {
	ItemID     string          `json:"item_id"`
	ItemName   string          `json:"item_name,omitempty"`
	Quantity   int64           `json:"quantity"`
	Rate       decimal.Decimal `json:"rate"`
	GSTPercent decimal.Decimal `json:"gst_percent"`
	GSTAmount  decimal.Decimal `json:"gst_amount"`
	LineTotal  decimal.Decimal `json:"line_total"`
}

// POResponse is a purchase order header with optional lines.
type POResponse struct {
	ID               string              `json:"id"`
	SupplierID       string              `json:"supplier_id"`
	OrderDate        time.Time           `json:"order_date"`
	ExpectedDelivery time.Time           `json:"expected_delivery"`
	Status           string              `json:"status"`
	Subtotal         decimal.Decimal     `json:"subtotal"`
	TotalGST         decimal.Decimal     `json:"total_gst"`
	TotalAmount      decimal.Decimal     `json:"total_amount"`
	Lines            []OrderLineResponse `json:"lines,omitempty"`
}

// POListResponse is a paginated purchase-order listing.
type POListResponse struct {
	Items []POResponse `json:"items"`
	Page  PageResponse `json:"page"`
}

// ReceiptLineRequest is one received item: accepted + rejected must equal
// received, received must be positive.
type ReceiptLineRequest struct {
	ItemID   string `json:"item_id" validate:"required"`
	Received int64  `json:"received" validate:"required,min=1"`
	Accepted int64  `json:"accepted" validate:"min=0"`
	Rejected int64  `json:"rejected" validate:"min=0"`
	Notes    string `json:"notes"`
}

// RecordReceiptRequest records a goods receipt batch against a purchase
// order. All lines share one supplier invoice number.
type RecordReceiptRequest struct {
	InvoiceNumber string               `json:"invoice_number" validate:"required"`
	ReceiptDate   string               `json:"receipt_date" validate:"required"`
	Lines         []ReceiptLineRequest `json:"lines" validate:"required,min=1,dive"`
}

// ReceiptResponse is one persisted goods-receipt row.
type ReceiptResponse struct {
	ID            string    `json:"id"`
	POID          string    `json:"po_id"`
	ItemID        string    `json:"item_id"`
	InvoiceNumber string    `json:"invoice_number"`
	Received      int64     `json:"received"`
	Accepted      int64     `json:"accepted"`
	Rejected      int64     `json:"rejected"`
	ReceiptDate   time.Time `json:"receipt_date"`
	Notes         string    `json:"notes,omitempty"`
}

// RecordReceiptResponse summarizes one receipt batch and the recomputed
// order status.
type RecordReceiptResponse struct {
	POID          string            `json:"po_id"`
	Status        string            `json:"status"`
	TotalReceived int64             `json:"total_received"`
	TotalAccepted int64             `json:"total_accepted"`
	TotalRejected int64             `json:"total_rejected"`
	Receipts      []ReceiptResponse `json:"receipts"`
}
