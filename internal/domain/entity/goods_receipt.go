package entity

import "time"

// GoodsReceipt is one persisted (PO, item) receipt fact. Several rows may
// share an invoice number (one delivery covering many items); each row stands
// alone. Invariant: Accepted + Rejected == Received, Received > 0. Only the
// accepted quantity ever reaches inventory.
type GoodsReceipt struct {
	ID            string
	POID          string
	ItemID        string
	SupplierID    string
	InvoiceNumber string
	Received      int64
	Accepted      int64
	Rejected      int64
	ReceiptDate   time.Time
	Notes         string
	CreatedAt     time.Time
}
