package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSORequest creates a sales order with its lines. Stock is checked per
// line but not decremented until delivery.
type CreateSORequest struct {
	CustomerID   string             `json:"customer_id" validate:"required"`
	DeliveryDate string             `json:"delivery_date" validate:"required"`
	Lines        []OrderLineRequest `json:"lines" validate:"required,min=1,dive"`
}

// EditSORequest replaces a pending order's lines wholesale and updates its
// delivery date. Forbidden once any delivery has occurred.
type EditSORequest struct {
	DeliveryDate string             `json:"delivery_date" validate:"required"`
	Lines        []OrderLineRequest `json:"lines" validate:"required,min=1,dive"`
}

// SOLineResponse is one snapshotted sales line with its delivery progress.
type SOLineResponse struct {
	ItemID     string          `json:"item_id"`
	ItemName   string          `json:"item_name,omitempty"`
	Quantity   int64           `json:"quantity"`
	Rate       decimal.Decimal `json:"rate"`
	GSTPercent decimal.Decimal `json:"gst_percent"`
	GSTAmount  decimal.Decimal `json:"gst_amount"`
	LineTotal  decimal.Decimal `json:"line_total"`
	Delivered  int64           `json:"delivered"`
	Remaining  int64           `json:"remaining"`
}

// SOResponse is a sales order header with optional lines.
type SOResponse struct {
	ID           string           `json:"id"`
	CustomerID   string           `json:"customer_id"`
	OrderDate    time.Time        `json:"order_date"`
	DeliveryDate time.Time        `json:"delivery_date"`
	Status       string           `json:"status"`
	Subtotal     decimal.Decimal  `json:"subtotal"`
	TotalGST     decimal.Decimal  `json:"total_gst"`
	TotalAmount  decimal.Decimal  `json:"total_amount"`
	Lines        []SOLineResponse `json:"lines,omitempty"`
}

// SOListResponse is a paginated sales-order listing.
type SOListResponse struct {
	Items []SOResponse `json:"items"`
	Page  PageResponse `json:"page"`
}

// DeliveryLineRequest is one line of a delivery: how many units of an
// ordered item leave stock now. Zero is allowed (line skipped this round).
type DeliveryLineRequest struct {
	ItemID   string `json:"item_id" validate:"required"`
	Quantity int64  `json:"quantity" validate:"min=0"`
}

// RecordDeliveryRequest records a (possibly partial) delivery against a
// sales order.
type RecordDeliveryRequest struct {
	Lines []DeliveryLineRequest `json:"lines" validate:"required,min=1,dive"`
}

// RecordDeliveryResponse summarizes one delivery and the recomputed status.
type RecordDeliveryResponse struct {
	SOID           string `json:"so_id"`
	Status         string `json:"status"`
	TotalDelivered int64  `json:"total_delivered"`
}

// DeliveryResponse is one persisted delivery row.
type DeliveryResponse struct {
	ID           string    `json:"id"`
	SOID         string    `json:"so_id"`
	ItemID       string    `json:"item_id"`
	Quantity     int64     `json:"quantity"`
	DeliveryDate time.Time `json:"delivery_date"`
}
