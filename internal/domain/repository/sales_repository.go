package repository

import "github.com/rajatsoni/vyapar-api/internal/domain/entity"

// SalesOrderRepository is the port for SO headers and their owned lines.
type SalesOrderRepository interface {
	Create(so *entity.SalesOrder) error
	CreateLine(line *entity.SalesOrderLine) error
	GetByID(id string) (*entity.SalesOrder, error)
	GetLines(soID string) ([]*entity.SalesOrderLine, error)
	List(limit, offset int) ([]*entity.SalesOrder, error)
	Update(so *entity.SalesOrder) error
	UpdateStatus(soID, status string) error
	DeleteLines(soID string) error
	Delete(id string) error
	CountByCustomer(customerID string) (int, error)
	CountLinesByItem(itemID string) (int, error)
}

// DeliveryRepository is the port for the append-only delivery facts.
// SumDeliveredBySO feeds both the derived SO status and the remaining
// quantity offered for follow-up deliveries.
type DeliveryRepository interface {
	Create(d *entity.Delivery) error
	ListBySO(soID string) ([]*entity.Delivery, error)
	SumDeliveredBySO(soID string) (map[string]int64, error)
}
