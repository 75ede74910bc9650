package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sales order statuses. Monotonic: Pending -> Partially Delivered ->
// Delivered. Stock is checked at order time but only decremented at delivery.
const (
	SOStatusPending            = "Pending"
	SOStatusPartiallyDelivered = "Partially Delivered"
	SOStatusDelivered          = "Delivered"
)

// SalesOrder is the header of a sales transaction. Editable while Pending;
// immutable once any delivery has occurred.
type SalesOrder struct {
	ID           string
	CustomerID   string
	OrderDate    time.Time
	DeliveryDate time.Time
	Status       string
	Subtotal     decimal.Decimal
	TotalGST     decimal.Decimal
	TotalAmount  decimal.Decimal
	CreatedAt    time.Time
}

// SalesOrderLine is one item row with rate/GST snapshotted at order time.
type SalesOrderLine struct {
	ID         string
	SOID       string
	ItemID     string
	Quantity   int64
	Rate       decimal.Decimal
	GSTPercent decimal.Decimal
	GSTAmount  decimal.Decimal
	LineTotal  decimal.Decimal
}
