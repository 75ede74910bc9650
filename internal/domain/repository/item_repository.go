package repository

import "github.com/rajatsoni/vyapar-api/internal/domain/entity"

// ItemRepository is the persistence port for catalog items.
type ItemRepository interface {
	Create(item *entity.Item) error
	GetByID(id string) (*entity.Item, error)
	Update(item *entity.Item) error
	List(limit, offset int) ([]*entity.Item, error)
	Delete(id string) error
}

// InventoryRepository is the port for the per-item stock record. Mutations
// run inside transactions; GetForUpdate locks the row (SELECT FOR UPDATE) so
// read-then-write on quantity_on_hand cannot lose updates.
type InventoryRepository interface {
	Create(inv *entity.Inventory) error
	Get(itemID string) (*entity.Inventory, error)
	GetForUpdate(itemID string) (*entity.Inventory, error)
	Update(inv *entity.Inventory) error
	Delete(itemID string) error
}
