package repository

import "github.com/rajatsoni/vyapar-api/internal/domain/entity"

// SupplierRepository is the persistence port for the supplier directory.
type SupplierRepository interface {
	Create(s *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	Update(s *entity.Supplier) error
	List(limit, offset int) ([]*entity.Supplier, error)
	Delete(id string) error
}

// CustomerRepository is the persistence port for the customer directory.
type CustomerRepository interface {
	Create(c *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	Update(c *entity.Customer) error
	List(limit, offset int) ([]*entity.Customer, error)
	Delete(id string) error
}
