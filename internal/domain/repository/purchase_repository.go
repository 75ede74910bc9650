package repository

import "github.com/rajatsoni/vyapar-api/internal/domain/entity"

// PurchaseOrderRepository is the port for PO headers and their owned lines.
// Lines are replaced en masse with the header; they have no life of their own.
type PurchaseOrderRepository interface {
	Create(po *entity.PurchaseOrder) error
	CreateLine(line *entity.PurchaseOrderLine) error
	GetByID(id string) (*entity.PurchaseOrder, error)
	GetLines(poID string) ([]*entity.PurchaseOrderLine, error)
	List(limit, offset int) ([]*entity.PurchaseOrder, error)
	UpdateStatus(poID, status string) error
	DeleteLines(poID string) error
	Delete(id string) error
	CountBySupplier(supplierID string) (int, error)
	CountLinesByItem(itemID string) (int, error)
}

// GoodsReceiptRepository is the port for the append-only receipt facts.
// SumReceivedByPO feeds the derived PO status: cumulative received per item
// across every historical receipt, not just the latest batch.
type GoodsReceiptRepository interface {
	Create(gr *entity.GoodsReceipt) error
	ListByPO(poID string) ([]*entity.GoodsReceipt, error)
	SumReceivedByPO(poID string) (map[string]int64, error)
	CountByPO(poID string) (int, error)
	CountByItem(itemID string) (int, error)
}
