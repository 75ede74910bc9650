package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase order statuses. Monotonic: Pending -> Partially Received ->
// Completed; the status is always re-derived from the full receipt history,
// never incremented.
const (
	POStatusPending           = "Pending"
	POStatusPartiallyReceived = "Partially Received"
	POStatusCompleted         = "Completed"
)

// PurchaseOrder is the header of a purchasing transaction. Totals are sums
// of the line snapshots.
type PurchaseOrder struct {
	ID               string
	SupplierID       string
	OrderDate        time.Time
	ExpectedDelivery time.Time
	Status           string
	Subtotal         decimal.Decimal
	TotalGST         decimal.Decimal
	TotalAmount      decimal.Decimal
	CreatedAt        time.Time
}

// PurchaseOrderLine is one item row. Rate and GST are snapshotted from the
// catalog at order time.
type PurchaseOrderLine struct {
	ID         string
	POID       string
	ItemID     string
	Quantity   int64
	Rate       decimal.Decimal
	GSTPercent decimal.Decimal
	GSTAmount  decimal.Decimal
	LineTotal  decimal.Decimal
}
