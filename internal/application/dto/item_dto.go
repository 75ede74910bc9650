package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateItemRequest creates a catalog item together with its inventory
// record. Rates and GST percentages are validated upstream ([0,100]); the
// derived prices are computed server-side, never accepted from the client.
type CreateItemRequest struct {
	Name               string          `json:"name" validate:"required,min=1,max=200"`
	Description        string          `json:"description"`
	Category           string          `json:"category"`
	UnitOfMeasure      string          `json:"unit_of_measure"`
	HSNCode            string          `json:"hsn_code"`
	PurchaseRate       decimal.Decimal `json:"purchase_rate"`
	PurchaseGSTPercent decimal.Decimal `json:"purchase_gst_percent"`
	SellingRate        decimal.Decimal `json:"selling_rate"`
	SellingGSTPercent  decimal.Decimal `json:"selling_gst_percent"`
	InitialQuantity    int64           `json:"initial_quantity" validate:"min=0"`
	ReorderLevel       int64           `json:"reorder_level" validate:"min=0"`
	Location           string          `json:"location"`
}

// UpdateItemRequest updates an item and its inventory settings. Historical
// order-line snapshots are never touched.
type UpdateItemRequest struct {
	Name               *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description        *string          `json:"description"`
	Category           *string          `json:"category"`
	UnitOfMeasure      *string          `json:"unit_of_measure"`
	HSNCode            *string          `json:"hsn_code"`
	PurchaseRate       *decimal.Decimal `json:"purchase_rate"`
	PurchaseGSTPercent *decimal.Decimal `json:"purchase_gst_percent"`
	SellingRate        *decimal.Decimal `json:"selling_rate"`
	SellingGSTPercent  *decimal.Decimal `json:"selling_gst_percent"`
	QuantityOnHand     *int64           `json:"quantity_on_hand" validate:"omitempty,min=0"`
	ReorderLevel       *int64           `json:"reorder_level" validate:"omitempty,min=0"`
	Location           *string          `json:"location"`
}

// ItemResponse is a catalog item with its current stock position.
type ItemResponse struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	Description        string          `json:"description"`
	Category           string          `json:"category"`
	UnitOfMeasure      string          `json:"unit_of_measure"`
	HSNCode            string          `json:"hsn_code"`
	PurchaseRate       decimal.Decimal `json:"purchase_rate"`
	PurchaseGSTPercent decimal.Decimal `json:"purchase_gst_percent"`
	PurchasePrice      decimal.Decimal `json:"purchase_price"`
	SellingRate        decimal.Decimal `json:"selling_rate"`
	SellingGSTPercent  decimal.Decimal `json:"selling_gst_percent"`
	SellingPrice       decimal.Decimal `json:"selling_price"`
	QuantityOnHand     int64           `json:"quantity_on_hand"`
	ReorderLevel       int64           `json:"reorder_level"`
	Location           string          `json:"location"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// ItemListResponse is a paginated item listing.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// LowStockAlert is one item at or below its reorder level.
type LowStockAlert struct {
	ItemID           string `json:"item_id"`
	Name             string `json:"name"`
	QuantityOnHand   int64  `json:"quantity_on_hand"`
	ReorderLevel     int64  `json:"reorder_level"`
	SuggestedReorder int64  `json:"suggested_reorder"`
}
