package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item is a catalog entry shared by the purchasing and sales flows. Both
// derived prices are computed from rate + GST at write time and snapshotted;
// order lines copy rate/GST when created and never follow later item edits.
type Item struct {
	ID                 string
	Name               string
	Description        string
	Category           string
	UnitOfMeasure      string
	HSNCode            string
	PurchaseRate       decimal.Decimal
	PurchaseGSTPercent decimal.Decimal
	PurchasePrice      decimal.Decimal // rate + GST, rounded at computation
	SellingRate        decimal.Decimal
	SellingGSTPercent  decimal.Decimal
	SellingPrice       decimal.Decimal
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Inventory is the single stock record paired 1:1 with an item. It is created
// with the item, mutated only by goods receipts (+accepted) and deliveries
// (-delivered), and never goes negative.
type Inventory struct {
	ItemID         string
	QuantityOnHand int64
	ReorderLevel   int64
	Location       string
	LastUpdated    time.Time
}

// ReorderSuggestion returns the replenishment quantity offered by low-stock
// alerts: enough to reach twice the reorder level.
func (inv *Inventory) ReorderSuggestion() int64 {
	return 2*inv.ReorderLevel - inv.QuantityOnHand
}
