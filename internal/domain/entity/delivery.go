package entity

import "time"

// Delivery is one persisted (SO, item) delivery fact, mirroring GoodsReceipt
// on the sales side. Cumulative delivered quantity per line is derived by
// summing these rows; the remaining quantity offered for a follow-up delivery
// is ordered minus that sum, never the full original amount.
type Delivery struct {
	ID           string
	SOID         string
	ItemID       string
	Quantity     int64
	DeliveryDate time.Time
	CreatedAt    time.Time
}
