package repository

import "github.com/rajatsoni/vyapar-api/internal/domain/entity"

// InvoiceRepository is the port for billing documents. GetBySOID backs the
// one-invoice-per-order rule (lookup before insert, plus a unique index).
type InvoiceRepository interface {
	Create(inv *entity.Invoice) error
	GetByID(id string) (*entity.Invoice, error)
	GetBySOID(soID string) (*entity.Invoice, error)
	List(limit, offset int) ([]*entity.Invoice, error)
	UpdateStatus(id, status string) error
	Delete(id string) error
	CountByCustomer(customerID string) (int, error)
}
