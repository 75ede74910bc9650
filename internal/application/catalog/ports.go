package catalog

import (
	"context"

	"github.com/rajatsoni/vyapar-api/internal/domain/repository"
)

// TxRunner executes a function inside a DB transaction, passing repositories
// bound to that transaction. Item and inventory rows are created and removed
// as one atomic unit.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.ItemRepository,
		invRepo repository.InventoryRepository,
	) error) error
}
